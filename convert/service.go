package convert

// Service funnels Convert/Learn/FlushUserData calls through a single
// owning goroutine, for callers whose input-method layer runs multiple
// threads and cannot otherwise serialise access to the shared Facade
// (spec.md §5's "funnel learning updates through a single owner"). The
// command-loop shape is grounded on the teacher's StartTokenizer
// goroutine consuming IngestChan.
type Service struct {
	commands chan command
	done     chan struct{}
}

type command struct {
	kind    commandKind
	yomi    string
	prev    string
	cur     string
	reply   chan convertReply
	errRepl chan error
}

type convertReply struct {
	result ConvertResult
	err    error
}

type commandKind int

const (
	cmdConvert commandKind = iota
	cmdLearn
	cmdFlush
)

// NewService starts the owning goroutine over f and returns a Service.
// Close must be called to stop it.
func NewService(f *Facade) *Service {
	s := &Service{
		commands: make(chan command),
		done:     make(chan struct{}),
	}
	go s.run(f)
	return s
}

func (s *Service) run(f *Facade) {
	defer close(s.done)
	for c := range s.commands {
		switch c.kind {
		case cmdConvert:
			result, err := f.Convert(c.yomi)
			c.reply <- convertReply{result: result, err: err}
		case cmdLearn:
			f.Learn(c.prev, c.cur)
			close(c.errRepl)
		case cmdFlush:
			c.errRepl <- f.FlushUserData()
		}
	}
}

// Convert dispatches a conversion to the owning goroutine and blocks for
// its result.
func (s *Service) Convert(yomi string) (ConvertResult, error) {
	reply := make(chan convertReply, 1)
	s.commands <- command{kind: cmdConvert, yomi: yomi, reply: reply}
	r := <-reply
	return r.result, r.err
}

// Learn dispatches a learning update to the owning goroutine and blocks
// until it has been applied.
func (s *Service) Learn(prev, cur string) {
	errRepl := make(chan error, 1)
	s.commands <- command{kind: cmdLearn, prev: prev, cur: cur, errRepl: errRepl}
	<-errRepl
}

// FlushUserData dispatches a persistence request to the owning goroutine
// and blocks for its result.
func (s *Service) FlushUserData() error {
	errRepl := make(chan error, 1)
	s.commands <- command{kind: cmdFlush, errRepl: errRepl}
	return <-errRepl
}

// Close stops the owning goroutine, letting any command already in
// flight finish first.
func (s *Service) Close() {
	close(s.commands)
	<-s.done
}
