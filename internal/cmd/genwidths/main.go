// Command genwidths regenerates union/widths_gen.go: one named array type per
// supported union cell width, each carrying the unexported method that seals
// the Width constraint.
//
// Usage (from the union package directory):
//
//	go run ../internal/cmd/genwidths -out widths_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
)

const (
	sizeOfLong   = 8
	maxLongCount = 512
	minByteCount = sizeOfLong * 2
	maxByteCount = sizeOfLong * maxLongCount
)

var widthsTemplate = template.Must(template.New("widths").Parse(`// Code generated by genwidths. DO NOT EDIT.

package union

// Cell widths from {{.Min}} to {{.Max}} bytes in {{.Step}}-byte steps. Use one as the
// type parameter of Data; WN selects an N-byte cell.
type (
{{- range .Counts}}
	W{{.}} [{{.}}]byte
{{- end}}
)
{{range .Counts}}
func (W{{.}}) byteCount() int { return {{.}} }
{{- end}}
`))

type widthsData struct {
	Min    int
	Max    int
	Step   int
	Counts []int
}

func main() {
	out := flag.String("out", "widths_gen.go", "output file")
	flag.Parse()

	src, err := render()
	if err != nil {
		log.Fatalf("genwidths: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("genwidths: write %s: %v", *out, err)
	}
}

func render() ([]byte, error) {
	data := widthsData{Min: minByteCount, Max: maxByteCount, Step: sizeOfLong}
	for n := minByteCount; n <= maxByteCount; n += sizeOfLong {
		data.Counts = append(data.Counts, n)
	}

	var buf bytes.Buffer
	if err := widthsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	return format.Source(buf.Bytes())
}
