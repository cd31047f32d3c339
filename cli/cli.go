// Package cli is an interactive REPL over the multimap façade, adapted
// from the teacher's bufio.Scanner-driven command loop (originally
// SET/DEL/GET over a byte-keyed B-tree) to the fixed-width integer
// operations spec §6 names.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"cachetree/multimap"
	"cachetree/visualize"
)

// Cli holds everything the teacher's Cli held: an input scanner, the
// data structure, and a visualizer kept in sync with it.
type Cli struct {
	scanner    *bufio.Scanner
	tree       *multimap.Multimap
	visualizer *visualize.Visualizer
	out        *os.File
}

// NewCli wires a REPL to an existing multimap, the way NewCli wired one
// to an existing *btree.Btree.
func NewCli(s *bufio.Scanner, t *multimap.Multimap) *Cli {
	v := &visualize.Visualizer{Tree: t}
	return &Cli{scanner: s, tree: t, visualizer: v, out: os.Stdout}
}

func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprint(c.out, `
Cache-conscious multimap CLI

Available Commands:
  ADD <key> <value>        Insert (key, value); creates the key if absent
  CONTAINSKEY <key>         Report whether key has any values
  CONTAINSPAIR <key> <val>  Report whether (key, value) was added
  TRAVERSE                  Print every (key, value) pair in order
  CLEAR                     Empty the multimap
  EXIT                      Terminate this session
`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

func (c *Cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		color.New(color.FgRed).Fprintf(c.out, "Unknown command %q\n", command)
	case "add":
		c.processAddCommand(fields[1:])
	case "containskey":
		c.processContainsKeyCommand(fields[1:])
	case "containspair":
		c.processContainsPairCommand(fields[1:])
	case "traverse":
		c.processTraverseCommand()
	case "clear":
		c.tree.Clear()
		fmt.Fprintln(c.out, "cleared")
	case "exit":
		os.Exit(0)
	}
}

func (c *Cli) processAddCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: ADD <key> <value>")
		return
	}
	key, value, err := parseKeyValue(args[0], args[1])
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	c.tree.Add(key, value)
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) processContainsKeyCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: CONTAINSKEY <key>")
		return
	}
	key, err := parseKey(args[0])
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	reportBool(c.out, c.tree.ContainsKey(key))
}

func (c *Cli) processContainsPairCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: CONTAINSPAIR <key> <value>")
		return
	}
	key, value, err := parseKeyValue(args[0], args[1])
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	reportBool(c.out, c.tree.ContainsPair(key, value))
}

func (c *Cli) processTraverseCommand() {
	c.tree.Traverse(func(k multimap.Key, v multimap.Value) {
		fmt.Fprintf(c.out, "(%d, %d)\n", k, v)
	})
}

func reportBool(out *os.File, ok bool) {
	if ok {
		color.New(color.FgGreen).Fprintln(out, "found")
		return
	}
	color.New(color.FgRed).Fprintln(out, "not found")
}

func parseKey(s string) (multimap.Key, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return multimap.Key(n), nil
}

func parseKeyValue(ks, vs string) (multimap.Key, multimap.Value, error) {
	key, err := parseKey(ks)
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.ParseInt(vs, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", vs, err)
	}
	return key, multimap.Value(n), nil
}
