// Package main is the entry point for choicefetch.
// It hands control to the cobra command tree in package cmd.
package main

import "choicefetch/cmd"

func main() {
	cmd.Execute()
}
