package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ShowroomDB/registry"
)

var (
	okColor  = color.New(color.FgGreen)
	errColor = color.New(color.FgRed)
)

// Cli is a line-oriented shell over a single string index.
type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	index   *registry.Index[string]
}

func NewCli(s *bufio.Scanner, out io.Writer, ix *registry.Index[string]) *Cli {
	return &Cli{scanner: s, out: out, index: ix}
}

// Start reads commands until EXIT or end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintln(c.out, `
B+ Tree CLI

Available Commands:
  SET <key> <val>  Insert or replace a key-value pair
  GET <key>        Retrieve the value for key
  DEL <key>        Remove a key-value pair
  SCAN [lo [hi]]   List pairs in key order, bounds inclusive
  DUMP             Print the tree level by level
  STATS            Print tree shape and fill
  EXIT             Terminate this session`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "db> ")
}

// processInput runs one command line and reports whether the session
// continues.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		errColor.Fprintf(c.out, "Unknown command %q\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "scan":
		c.processScanCommand(fields[1:])
	case "dump":
		Dump(c.out, c.index.Tree())
	case "stats":
		Stats(c.out, c.index.Tree())
	case "help":
		c.printHelp()
	case "exit", "quit":
		return false
	}
	return true
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "Usage: SET <key> <value>")
		return
	}
	if c.index.Put(args[0], strings.Join(args[1:], " ")) {
		okColor.Fprintln(c.out, "OK (replaced)")
		return
	}
	okColor.Fprintln(c.out, "OK")
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	v, ok := c.index.Get(args[0])
	if !ok {
		errColor.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, v)
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DEL <key>")
		return
	}
	if !c.index.Delete(args[0]) {
		errColor.Fprintln(c.out, "Key not found.")
		return
	}
	okColor.Fprintln(c.out, "OK")
}

func (c *Cli) processScanCommand(args []string) {
	var lo, hi string
	switch len(args) {
	case 0:
	case 1:
		lo = args[0]
	case 2:
		lo, hi = args[0], args[1]
	default:
		fmt.Fprintln(c.out, "Usage: SCAN [lo [hi]]")
		return
	}
	n := 0
	for k, v := range c.index.Range(lo, hi) {
		fmt.Fprintf(c.out, "%s = %s\n", k, v)
		n++
	}
	fmt.Fprintf(c.out, "(%d rows)\n", n)
}
