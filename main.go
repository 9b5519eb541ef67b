// main package for clonesim command-line tool
// Package main is the entry point for the clonesim CLI.
package main

import "clonesim.dev/pkg/clonesim/cmd"

func main() {
	cmd.Execute()
}
