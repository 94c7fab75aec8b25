package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/milobeyene/javacheck/src/parse"
)

// runREPL starts an interactive loop where declarations such as
// `Rectangle rect;` extend the scope and expressions print their static type.
func runREPL(p *parse.Parser) {
	printVersion()
	fmt.Fprint(os.Stderr, "Press ctrl-c or ctrl-d to quit.\n")
	checkErr(repl(p))
}

func repl(p *parse.Parser) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()
	for {
		src, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		if err := checkStat(p, src, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
