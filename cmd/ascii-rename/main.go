package main

import (
	"fmt"
	"os"
)

func main() {
	exitCode := 0
	cmd := newRootCommand(&exitCode)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
