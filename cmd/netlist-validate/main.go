// Command netlist-validate checks a netlist JSON document from a file or
// stdin and prints the validation report as JSON.
//
// Exit codes: 0 valid, 1 invalid, 2 malformed input or I/O failure.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"netlist-visualizer-backend/internal/netlist"
)

func main() {
	rulesPath := flag.String("rules", "", "path to a rule configuration YAML file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [netlist.json]\n\nReads from stdin when no file is given.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	raw, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	cfg := netlist.DefaultRuleConfig()
	if *rulesPath != "" {
		cfg, err = netlist.LoadRuleConfig(*rulesPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(2)
		}
	}

	_, result, err := netlist.Validate(raw, cfg)
	if err != nil {
		// MalformedInputError or an internal failure; either way the
		// document was never validated.
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if result.Status == netlist.StatusInvalid {
		os.Exit(1)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
