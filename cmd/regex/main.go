// Command regex compiles a pattern given on the command line, prints
// the automaton graph, and then classifies strings read interactively.
// Verdicts go to stderr so the graph can be piped to dot cleanly.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/ValorCat/csis-616-automata-theory/regexlib"
)

const historyFile = ".regex_history"

func main() {
	nfaFlag := flag.Bool("nfa", false, "print the NFA graph instead of the DFA graph")
	minFlag := flag.Bool("min", false, "minimize the DFA before printing and matching")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: regex [flags] <pattern>")
		flag.PrintDefaults()
	}
	flag.Parse()

	// joining restores spaces an unquoted pattern lost to the shell
	pattern := strings.Join(flag.Args(), " ")
	if pattern == "" {
		fmt.Println("Usage: ./regex <regex>")
		return
	}

	re, err := regexlib.Compile(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dfa := re.DFA()
	if *minFlag {
		dfa = regexlib.Minimize(dfa)
	}

	if *nfaFlag {
		fmt.Println("---[ NFA Graph ]----------------")
		fmt.Println(re.NFA().Graph())
	} else {
		fmt.Println("---[ DFA Graph ]----------------")
		fmt.Println(dfa.Graph())
	}
	fmt.Println("--------------------------------")

	fmt.Println("Enter strings to test them:")
	if err := classify(dfa); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading from stdin:", err)
		os.Exit(1)
	}
}

// classify prompts for strings until EOF, reporting each as accepted or
// rejected on stderr.
func classify(dfa *regexlib.DFA) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}
		if line != "" {
			ln.AppendHistory(line)
		}
		if dfa.Accepts(line) {
			fmt.Fprintln(os.Stderr, "Accept", line)
		} else {
			fmt.Fprintln(os.Stderr, "Reject", line)
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
