// Command score evaluates a file of observation envelopes offline and writes
// the resulting location reports as JSON. Input may be YAML or JSON.
//
// Usage:
//
//	go run ./cmd/score -in observations.yaml -out reports.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/couchcryptid/drying-index-etl/internal/domain"
	"gopkg.in/yaml.v3"
)

func main() {
	in := flag.String("in", "", "YAML or JSON file containing a list of observation envelopes")
	out := flag.String("out", "", "output file for reports (default stdout)")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*in, *out); err != nil {
		log.Fatal(err)
	}
}

func run(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	envs, err := decodeEnvelopes(data)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	return writeReports(w, domain.EvaluateBatch(envs))
}

// decodeEnvelopes parses a YAML document (JSON is accepted as a YAML subset).
func decodeEnvelopes(data []byte) ([]domain.ObservationEnvelope, error) {
	var envs []domain.ObservationEnvelope
	if err := yaml.Unmarshal(data, &envs); err != nil {
		return nil, fmt.Errorf("decode envelopes: %w", err)
	}
	return envs, nil
}

func writeReports(w io.Writer, reports []domain.LocationReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}
	return nil
}
