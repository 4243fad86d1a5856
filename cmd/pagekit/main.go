package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "apply":
		err = runApply(args, os.Stdout)
	case "value":
		err = runValue(args, os.Stdout)
	case "format":
		err = runFormat(args, os.Stdout)
	case "url":
		err = runURL(args, os.Stdout)
	case "version":
		fmt.Printf("pagekit version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pagekit - form and page helpers for server-rendered HTML

Usage:
  pagekit <command> [arguments]

Commands:
  apply <action> <file>   Apply an action to elements of an HTML file and print the result
  value <file>            Print the value of a single element
  format <kind> <value>   Format a literal value (float, decimal, number, ucwords)
  url <path>              Build a site URL (or an admin URL with --admin)
  version                 Print version
  help                    Show this help

Actions for apply:
  disable, enable, show, hide, allow-decimal, remove-parent-class, datepicker

Options:
  --target <selector>     Element to act on (repeatable)
  --class <name>          Class removed by remove-parent-class
  --format <kind>         Value format: raw, float, decimal, number (value only)
  --out <file>            Write the document to a file instead of stdout (apply only)
  --admin                 Use the admin root (url only)
  --config <file>         Load settings from a JSON, YAML or TOML file
  --site-url, --admin-url, --on-unresolvable, --debug, --padded-zero,
  --signing-key, --loader.selector, --loader.message

Examples:
  pagekit apply disable page.html --target "#save" --target .row
  pagekit apply remove-parent-class page.html --target .field --class has-error
  pagekit value page.html --target "#price" --format number
  pagekit format decimal 1234.5
  pagekit url --config pagekit.yaml --admin users`)
}
