package main

import (
	"fmt"
	"os"

	"github.com/pthm/livedom/lib/generator"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "clean":
		if err := runClean(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("livedom version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`livedom - element table generator for livedom

Usage:
  livedom <command> [arguments]

Commands:
  generate [dirs]       Compile elements.yaml into elements_gen.go (e.g., . or ./...)
  clean [dirs]          Remove generated element files
  version               Print version
  help                  Show this help

Options:
  --dry-run             Show what would be written or removed without touching files

Configuration:
  A livedom.yaml next to the table may override generate.elements,
  generate.output and generate.package.

Examples:
  livedom generate ./...            Generate for every directory with a table
  livedom generate ./ui             Generate for one directory
  livedom generate --dry-run ./...  Preview generation
  livedom clean ./...               Remove all generated files`)
}

func parseArgs(args []string) (dryRun bool, patterns []string) {
	for _, arg := range args {
		if arg == "--dry-run" {
			dryRun = true
		} else {
			patterns = append(patterns, arg)
		}
	}

	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	return dryRun, patterns
}

func runGenerate(args []string) error {
	dryRun, patterns := parseArgs(args)
	gen := generator.New(generator.Options{
		DryRun: dryRun,
	})
	return gen.Generate(patterns...)
}

func runClean(args []string) error {
	dryRun, patterns := parseArgs(args)
	gen := generator.New(generator.Options{
		DryRun: dryRun,
	})
	return gen.Clean(patterns...)
}
