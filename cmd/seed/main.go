// Command seed generates a synthetic patient dataset as CSV, suitable for
// bootstrapping an empty installation through the dataset import endpoint.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clinvital/vitalis/internal/patients"
)

func main() {
	var (
		out   = flag.String("out", "patients.csv", "Output file, or - for stdout")
		count = flag.Int("count", 5000, "Number of patient records to generate")
		seed  = flag.Uint64("seed", 42, "Random seed; identical seeds reproduce the dataset")
	)
	flag.Parse()

	if *count <= 0 {
		log.Fatalf("count must be positive, got %d", *count)
	}

	records := patients.SampleDataset(*count, *seed)

	writer := os.Stdout
	if *out != "-" {
		file, err := os.Create(*out)
		if err != nil {
			log.Fatalf("failed to create %s: %v", *out, err)
		}
		defer file.Close()
		writer = file
	}

	if err := patients.WriteDataset(writer, records); err != nil {
		log.Fatalf("failed to write dataset: %v", err)
	}

	if *out != "-" {
		fmt.Printf("wrote %d records to %s\n", len(records), *out)
	}
}
