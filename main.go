package main

import "github.com/binres-gen/binres-gen/cmd"

// main is the entry point of the binres-gen CLI application.
// It executes the root command which handles argument parsing and flags.
func main() {
	cmd.Execute()
}
