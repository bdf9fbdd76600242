// Command preview scores a questionnaire from a JSON file or stdin and prints
// the result. Useful for tuning the catalog without running the API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"buyer-quiz/internal/scoring"
)

func main() {
	inputPath := flag.String("input", "", "path to a JSON answers file (defaults to stdin)")
	flag.Parse()

	if err := run(*inputPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(inputPath string) error {
	var reader io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var in scoring.Input
	if err := json.NewDecoder(reader).Decode(&in); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	engine, err := scoring.NewEngine(scoring.DefaultCatalog())
	if err != nil {
		return fmt.Errorf("scoring engine: %w", err)
	}

	result, err := engine.Evaluate(in)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
