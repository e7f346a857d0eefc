/*
Scramble runs a Scramble source file, or starts an interactive session when
given none.

Usage:

	scramble [flags] [FILE]

The flags are:

	-v, --version
		Print the current version and exit.

	-c, --cache
		Cache the lexed token stream for FILE in a sibling ".sxc" file and
		reuse it on later runs of the same, unmodified file.

	-q, --quiet
		Suppress the "Error: ..." rendering on failure; only the exit code
		changes.

With no FILE, scramble starts a line-at-a-time REPL against a persistent
top-level environment, using GNU-readline-style editing when connected to a
terminal.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/scramble"
	"github.com/dekarrin/scramble/internal/input"
	"github.com/dekarrin/scramble/internal/version"
	"github.com/spf13/pflag"
)

const (
	exitSuccess = iota
	exitRunError
	exitInitError
)

var (
	returnCode  = exitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "print the current version and exit")
	flagCache   = pflag.BoolP("cache", "c", false, "cache the lexed token stream next to the source file")
	flagQuiet   = pflag.BoolP("quiet", "q", false, "suppress error rendering")
)

func main() {
	defer func() {
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Println(version.Current)
		return
	}

	args := pflag.Args()
	if len(args) == 0 {
		runREPL()
		return
	}

	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		returnCode = exitInitError
		return
	}

	eng := scramble.New(os.Stdin, os.Stdout, os.Stderr, *flagCache)
	if runErr := eng.RunFile(path); runErr != nil {
		if !*flagQuiet {
			fmt.Fprintln(os.Stderr, scramble.Render(runErr, string(src)))
		}
		returnCode = exitRunError
	}
}

// runREPL reads one line of source at a time and evaluates it against a
// single persistent Engine, so a function or variable defined on one line
// stays visible on the next.
func runREPL() {
	eng := scramble.New(os.Stdin, os.Stdout, os.Stderr, false)

	reader, err := input.NewInteractiveReader()
	if err != nil {
		direct := input.NewDirectReader(os.Stdin)
		runREPLLoop(eng, direct)
		return
	}
	defer reader.Close()
	reader.SetPrompt("scramble> ")
	runREPLLoop(eng, reader)
}

type lineReader interface {
	ReadCommand() (string, error)
	Close() error
}

func runREPLLoop(eng *scramble.Engine, r lineReader) {
	for {
		line, err := r.ReadCommand()
		if err != nil {
			return
		}
		if runErr := eng.RunSource(line + "\n"); runErr != nil {
			fmt.Fprintln(os.Stderr, scramble.Render(runErr, line))
		}
	}
}
