// Command smartquery is a small REPL-style CLI over pkg/smartquery: it
// reads one SmartQuery expression per line from stdin (or a single
// expression passed as the first argument), evaluates it against an
// empty name scope, and prints the result — errors are colorized when
// stdout is a terminal.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/smartquery/smartquery/internal/value"
	"github.com/smartquery/smartquery/pkg/smartquery"
)

func main() {
	p := smartquery.New()
	colorError := isatty.IsTerminal(os.Stdout.Fd())

	if len(os.Args) > 1 {
		runOne(p, os.Args[1], colorError)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		runOne(p, line, colorError)
	}
}

func runOne(p *smartquery.Parser, source string, colorError bool) {
	result, err := p.Evaluate(source, nil, nil, 0)
	if err != nil {
		printError(err, colorError)
		return
	}
	fmt.Println(value.ToDisplayString(result))
}

func printError(err error, color bool) {
	if color {
		fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", err)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
