// Package main is the entry point for the jsguard CLI.
package main

import "jsguard.dev/pkg/jsguard/cmd"

func main() {
	cmd.Execute()
}
