// Command codegen generates the DMS shapes in internal/api from a Smithy
// JSON model.
//
//	go run ./cmd/codegen -model api-models/dms.json -output internal/api
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/nandemo-ya/dms-go/cmd/codegen/generator"
	"github.com/nandemo-ya/dms-go/cmd/codegen/parser"
)

func main() {
	var (
		modelPath   = flag.String("model", "api-models/dms.json", "Path to Smithy model JSON file")
		outputDir   = flag.String("output", "internal/api", "Output directory for generated code")
		packageName = flag.String("package", "api", "Package name of the generated code")
		modulePath  = flag.String("module", "github.com/nandemo-ya/dms-go", "Go module path of the repository")
	)
	flag.Parse()

	api, err := parser.ParseSmithyJSON(*modelPath)
	if err != nil {
		log.Fatalf("Failed to parse model: %v", err)
	}

	ops, err := api.GetOperations()
	if err != nil {
		log.Fatalf("Failed to read operations: %v", err)
	}

	gen := generator.New(*packageName, *modulePath, *outputDir)
	if err := gen.Generate(api); err != nil {
		log.Fatalf("Failed to generate code: %v", err)
	}

	fmt.Printf("Generated %d operations to %s\n", len(ops), *outputDir)
}
