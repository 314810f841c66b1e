// Command akazakana is a minimal CLI front end for the conversion core:
// it loads the artifacts named by a config file and converts either a
// single string given via -text or each line read from stdin. It mirrors
// the original implementation's akaza-demo CLI and the teacher's plain
// main.go entry point.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"akazakana/config"
	"akazakana/convert"
	"akazakana/logger"
)

func main() {
	configPath := flag.String("config", "akazakana.yaml", "path to the YAML configuration file")
	text := flag.String("text", "", "convert this single string and exit; omit to read lines from stdin")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	facade, err := convert.NewFacade(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialise conversion facade:", err)
		os.Exit(1)
	}

	if *text != "" {
		convertAndPrint(facade, *text)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		convertAndPrint(facade, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Component("cmd").Error().Err(err).Msg("error reading stdin")
	}
}

func convertAndPrint(f *convert.Facade, yomi string) {
	result, err := f.Convert(yomi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\t(rejected: %v)\n", yomi, err)
		return
	}
	if result.NoPath {
		fmt.Printf("%s\t(no path found, showing raw input)\n", result.Surface)
		return
	}
	fmt.Println(result.Surface)
}
