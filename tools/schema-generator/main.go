// Command schema-generator writes the JSON schema for selfpath.yml, including
// every registered extension section.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/grovetools/selfpath/config"
	"github.com/grovetools/selfpath/logging"
)

func main() {
	output := flag.String("o", filepath.Join("schema", "selfpath.schema.json"), "output file")
	flag.Parse()

	log := logging.NewLogger("schema-generator")

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}
	if err := os.WriteFile(*output, append(schemaBytes, '\n'), 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.WithField("path", *output).Info("Generated config schema")
}
