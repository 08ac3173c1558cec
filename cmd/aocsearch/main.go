// Command aocsearch solves the bundled search puzzles.
//
//	aocsearch list
//	aocsearch run 2016-13 2016-17 --inputs ./inputs
//	aocsearch all --config aocsearch.yaml --log-level debug
package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds the command tree and executes it with args.
func run(outW, errW io.Writer, args []string) error {
	root := newRootCmd(outW, errW)
	root.SetArgs(args)

	return root.ExecuteContext(context.Background())
}
