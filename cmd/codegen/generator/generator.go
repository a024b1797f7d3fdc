package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/nandemo-ya/dms-go/cmd/codegen/parser"
)

// Generator handles code generation for AWS services
type Generator struct {
	packageName string
	modulePath  string
	outputDir   string
}

// New creates a new code generator. modulePath is the Go module the output
// package lives in; it is used to import the common and shape packages.
func New(packageName, modulePath, outputDir string) *Generator {
	return &Generator{
		packageName: packageName,
		modulePath:  modulePath,
		outputDir:   outputDir,
	}
}

// Generate writes every generated file for api into the output directory.
func (g *Generator) Generate(api *parser.SmithyAPI) error {
	model, err := g.buildModel(api)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name string
		tmpl *template.Template
	}{
		{"types.go", typesTmpl},
		{"enums.go", enumsTmpl},
		{"accessors.go", accessorsTmpl},
		{"errors.go", errorsTmpl},
		{"operations.go", operationsTmpl},
	}
	for _, f := range files {
		content, err := g.executeTemplate(f.tmpl, model)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		if err := g.writeFormattedFile(f.name, content); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

// writeFormattedFile writes formatted Go code to a file
func (g *Generator) writeFormattedFile(filename string, content []byte) error {
	formatted, err := format.Source(content)
	if err != nil {
		// If formatting fails, write unformatted for debugging
		if writeErr := os.WriteFile(filepath.Join(g.outputDir, filename+".unformatted"), content, 0644); writeErr != nil {
			return fmt.Errorf("failed to write unformatted file: %w", writeErr)
		}
		return fmt.Errorf("failed to format Go code: %w (unformatted version saved)", err)
	}

	fullPath := filepath.Join(g.outputDir, filename)
	if err := os.WriteFile(fullPath, formatted, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// executeTemplate executes a template with the given data
func (g *Generator) executeTemplate(tmpl *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
