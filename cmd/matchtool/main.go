// Package main is the entry point for the matchtool CLI, which seeds
// demo events into a running matchboard server and inspects its output.
package main

import "github.com/eyamansouri/matchboard/internal/tool"

func main() {
	tool.Execute()
}
