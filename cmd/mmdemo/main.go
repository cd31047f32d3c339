// Command mmdemo is the interactive entrypoint, wiring config parsing
// to the multimap to the REPL exactly the way the teacher's main.go
// wired a scanner and a bare *btree.Btree to its cli.Cli.
package main

import (
	"bufio"
	"fmt"
	"os"

	"cachetree/cli"
	"cachetree/config"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	tree := cfg.New()
	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, tree)
	demo.Start()
}
