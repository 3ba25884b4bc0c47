// Package main is the entry point for the ursa configuration resolver.
package main

import (
	"fmt"
	"os"

	"github.com/dshills/ursa/internal/resolver"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 1 && (args[0] == "--version" || args[0] == "-v") {
		fmt.Printf("ursa %s (%s)\n", version, commit)
		return 0
	}

	manager := resolver.New()
	result, err := manager.Run(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Run hands ownership of the printer and interactor to the caller.
	defer result.Close()

	printSummary(result)
	return 0
}

// printSummary reports the resolved sections and their discovered bears.
func printSummary(result *resolver.Result) {
	for _, name := range result.Sections.Names() {
		section, _ := result.Sections.Get(name)

		fmt.Printf("[%s]\n", name)
		for _, key := range section.Keys() {
			setting, _ := section.GetLocal(key)
			fmt.Printf("  %s = %s\n", key, setting.Value())
		}

		for _, b := range result.LocalBears[name] {
			fmt.Printf("  local bear: %s (%s)\n", b.Name, b.Path)
		}
		for _, b := range result.GlobalBears[name] {
			fmt.Printf("  global bear: %s (%s)\n", b.Name, b.Path)
		}
	}

	if len(result.Targets) > 0 {
		fmt.Printf("targets: %v\n", result.Targets)
	}
}
