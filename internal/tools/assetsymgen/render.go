package assetsymgen

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/louisbranch/sgfplayer/internal/platform/assets/catalog"
	"github.com/louisbranch/sgfplayer/internal/platform/assets/symbols"
)

//go:embed templates/names.go.tmpl
var namesTemplateText string

var namesTemplate = template.Must(template.New("names").Parse(namesTemplateText))

// generatedFuncs are the package-level functions the template declares.
var generatedFuncs = []string{"All", "Parse"}

// Options describes the generated Go file.
//
// Only the base name of Source appears in the generated header, so output
// does not depend on the checkout location. Reserved lists identifiers the
// target package declares outside the generated file.
type Options struct {
	Package  string
	TypeName string
	Source   string
	Reserved []string
}

type templateData struct {
	Source   string
	Package  string
	TypeName string
	Symbols  []symbols.Symbol
}

// Render produces the formatted Go source for the manifest's image names.
//
// Output depends only on the set of catalog keys and the options, so an
// unchanged catalog always renders byte-identical source.
func Render(manifest catalog.Manifest, opts Options) ([]byte, symbols.Table, error) {
	if err := manifest.Validate(); err != nil {
		return nil, symbols.Table{}, err
	}
	reserved := append([]string{opts.TypeName}, generatedFuncs...)
	table, err := symbols.Build(manifest.Keys(), append(reserved, opts.Reserved...))
	if err != nil {
		return nil, symbols.Table{}, err
	}

	var buf bytes.Buffer
	data := templateData{
		Source:   sourceName(opts.Source, manifest.ID),
		Package:  opts.Package,
		TypeName: opts.TypeName,
		Symbols:  table.Symbols(),
	}
	if err := namesTemplate.Execute(&buf, data); err != nil {
		return nil, symbols.Table{}, fmt.Errorf("execute template: %w", err)
	}
	formatted, err := imports.Process("", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, symbols.Table{}, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, table, nil
}

// RenderMarkdown renders the catalog as a markdown table.
func RenderMarkdown(manifest catalog.Manifest, table symbols.Table, source string) string {
	var builder strings.Builder
	builder.WriteString("# Image Catalog\n\n")
	builder.WriteString("Generated by `assetsymgen` from `")
	builder.WriteString(sourceName(source, manifest.ID))
	builder.WriteString("`.\n\n")
	builder.WriteString("| Catalog key | Symbol | Files |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, sym := range table.Symbols() {
		entry, _ := manifest.Entry(sym.Key)
		builder.WriteString("| ")
		builder.WriteString(sym.Key)
		builder.WriteString(" | ")
		builder.WriteString(sym.Name)
		builder.WriteString(" | ")
		builder.WriteString(strings.Join(entry.Files, ", "))
		builder.WriteString(" |\n")
	}
	return builder.String()
}

func sourceName(source, manifestID string) string {
	if source = strings.TrimSpace(source); source != "" {
		return filepath.Base(filepath.Clean(source))
	}
	if manifestID = strings.TrimSpace(manifestID); manifestID != "" {
		return manifestID
	}
	return "asset catalog"
}
