// Package ingest assigns request identities to inbound conversion calls,
// grounded on the teacher's generateID: a short random hex id, falling
// back to a timestamp when the system RNG is unavailable.
package ingest

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewRequestID returns a short random hex id suitable for correlating a
// convert/learn call across log lines.
func NewRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
