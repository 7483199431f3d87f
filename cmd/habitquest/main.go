// Package main is the single-binary entrypoint for HabitQuest.
package main

import "github.com/habitquest/habitquest/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
