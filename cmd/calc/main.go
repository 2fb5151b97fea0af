// Command calc evaluates arithmetic expressions.
//
// With arguments, each argument is evaluated and printed. Without arguments,
// calc reads expressions line by line from stdin (or the file given with
// -in) until EOF or an exit command: exit, quit, or q.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/anatolt/calc"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	log.SetFlags(0)
	var inname string
	flag.StringVar(&inname, "in", "", "read expressions from a file instead of stdin")
	flag.Parse()

	if flag.NArg() > 0 {
		if inname != "" {
			log.Fatal("cannot use -in together with expression arguments")
		}
		code := 0
		for _, arg := range flag.Args() {
			v, err := calc.Calculate(arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				code = 1
				continue
			}
			fmt.Println(v)
		}
		os.Exit(code)
	}

	in, interactive, err := input(inname)
	if err != nil {
		log.Fatal(err)
	}
	repl(in, os.Stdout, interactive)
}

// input selects the expression source and reports whether it is an
// interactive terminal.
func input(inname string) (io.Reader, bool, error) {
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	}
	return os.Stdin, term.IsTerminal(int(os.Stdin.Fd())), nil
}

// repl reads expressions a line at a time and prints each result or error.
// Errors don't stop the loop; only EOF or an exit command does. Prompts and
// colors appear only on a terminal so piped output stays plain.
func repl(in io.Reader, out io.Writer, interactive bool) {
	plain := func(s string) string { return s }
	prompt, result, report := plain, plain, plain
	if interactive {
		prompt = func(s string) string { return promptStyle.Render(s) }
		result = func(s string) string { return resultStyle.Render(s) }
		report = func(s string) string { return errorStyle.Render(s) }
		fmt.Fprintln(out, "calc: type an expression, or exit to quit")
	}
	scan := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, prompt("> "))
		}
		if !scan.Scan() {
			break
		}
		line := strings.TrimSpace(scan.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit", "q":
			return
		}
		v, err := calc.Calculate(line)
		if err != nil {
			fmt.Fprintln(out, report("error: "+err.Error()))
			continue
		}
		fmt.Fprintln(out, result("= "+v.String()))
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}
