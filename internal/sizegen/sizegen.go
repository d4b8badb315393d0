// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package sizegen renders the size types that parameterize a bitset and the
// constraints tying those sizes to the integer widths they convert to and
// from.  Each SizeN type carries a fitsW marker for every width W >= N and a
// holdsW marker for every W <= N, so FitsW and HoldsW admit exactly the sizes
// that convert losslessly and the relation is checked by the compiler.
package sizegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"slices"
	"text/template"

	"golang.org/x/tools/imports"
)

var (
	errNoWidths     = errors.New("at least one width is required")
	errMissingWidth = errors.New("missing width")
)

// Config describes one generated file.
type Config struct {
	// Package is the package clause of the generated file.
	Package string
	// Max is the largest bitset size; a SizeN type is emitted for 1..Max.
	Max int
	// Widths are the integer widths to emit Fits/Holds constraints for,
	// in ascending order.
	Widths []int
}

// DefaultConfig returns the configuration used for the bitset package.  The
// bitset package's conversions need every default width, so a Config for
// package bitset must include them; smaller configs are for other packages.
func DefaultConfig() Config {
	return Config{
		Package: "bitset",
		Max:     128,
		Widths:  []int{8, 16, 32, 64, 128},
	}
}

// Validate reports whether c can be rendered.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid package name %q", c.Package)
	}
	if c.Max < 1 {
		return fmt.Errorf("max size must be positive, got %d", c.Max)
	}
	if len(c.Widths) == 0 {
		return errNoWidths
	}
	prev := 0
	for _, w := range c.Widths {
		if w <= prev {
			return fmt.Errorf("widths must be positive and strictly ascending: %v", c.Widths)
		}
		if w > c.Max {
			return fmt.Errorf("width %d exceeds max size %d", w, c.Max)
		}
		prev = w
	}
	if def := DefaultConfig(); c.Package == def.Package {
		for _, w := range def.Widths {
			if !slices.Contains(c.Widths, w) {
				return fmt.Errorf("package %s requires width %d: %w", c.Package, w, errMissingWidth)
			}
		}
	}
	return nil
}

// sizeData is one SizeN type and the widths it converts to and from.
type sizeData struct {
	N     int
	Fits  []int
	Holds []int
}

type fileData struct {
	Config
	Sizes []sizeData
}

func newFileData(c Config) fileData {
	d := fileData{Config: c, Sizes: make([]sizeData, 0, c.Max)}
	for n := 1; n <= c.Max; n++ {
		s := sizeData{N: n}
		for _, w := range c.Widths {
			if n <= w {
				s.Fits = append(s.Fits, w)
			}
			if n >= w {
				s.Holds = append(s.Holds, w)
			}
		}
		d.Sizes = append(d.Sizes, s)
	}
	return d
}

var fileTmpl = template.Must(template.New("sizes").Parse(`// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Code generated by gen-sizes. DO NOT EDIT.

package {{.Package}}

// MaxLen is the largest supported bitset size.
const MaxLen = {{.Max}}

// Size is implemented only by the SizeN types of this package, and by types
// embedding one, which take on its size.
type Size interface {
	n() int
}
{{range .Widths}}
// Fits{{.}} admits sizes of at most {{.}} bits: the bitsets ToUint{{.}} accepts.
type Fits{{.}} interface {
	Size
	fits{{.}}()
}

// Holds{{.}} admits sizes of at least {{.}} bits: the bitsets FromUint{{.}} accepts.
type Holds{{.}} interface {
	Size
	holds{{.}}()
}

// Bits{{.}} is the Bitset of {{.}} bits.
type Bits{{.}} = Bitset[Size{{.}}]
{{end}}{{range $s := .Sizes}}
// Size{{$s.N}} is the type argument for {{$s.N}}-bit bitsets.
type Size{{$s.N}} struct{}

func (Size{{$s.N}}) n() int { return {{$s.N}} }
{{range $s.Fits}}func (Size{{$s.N}}) fits{{.}}() {}
{{end}}{{range $s.Holds}}func (Size{{$s.N}}) holds{{.}}() {}
{{end}}{{end}}`))

// Render returns the gofmt'd source of the constraints file for c.
func Render(c Config) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("sizegen: %w", err)
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, newFileData(c)); err != nil {
		return nil, fmt.Errorf("template.Execute: %w", err)
	}
	out, err := imports.Process("sizes_gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("imports.Process: %w", err)
	}
	return out, nil
}
