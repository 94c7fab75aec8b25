// Package main is the main entrypoint to the javacheck application.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/milobeyene/javacheck/src/conf"
	"github.com/milobeyene/javacheck/src/parse"
)

var (
	executeStat string
	dumpTree    bool
	showVersion bool
)

func init() {
	flag.StringVar(&executeStat, "e", "", "check expression 'stat' and exit")
	flag.BoolVar(&dumpTree, "a", false, "dump the parsed tree before checking")
	flag.BoolVar(&showVersion, "v", false, "show version information")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		printVersion()
		return
	}

	p := parse.New(demoUniverse())
	if executeStat != "" {
		checkErr(checkStat(p, executeStat, os.Stdout))
		return
	}
	runREPL(p)
}

// checkStat parses one statement, validates it, and prints its static type.
func checkStat(p *parse.Parser, src string, out io.Writer) error {
	ex, err := p.Stat(src)
	if err != nil || ex == nil {
		return err
	}
	if dumpTree {
		spew.Fdump(out, ex)
	}
	if err := ex.CheckTypes(); err != nil {
		return err
	}
	st, err := ex.StaticType()
	if err != nil {
		return err
	}
	src = strings.TrimSuffix(strings.TrimSpace(src), ";")
	fmt.Fprintf(out, "%s : %s\n", src, st)
	return nil
}

func printVersion() {
	fmt.Fprintf(os.Stderr, "%v\n", conf.FullVersion())
}

func printUsage() {
	printVersion()
	fmt.Fprint(os.Stderr, "\nUsage: javacheck [options]\n")
	flag.PrintDefaults()
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
