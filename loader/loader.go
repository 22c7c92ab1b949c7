// Package loader fills quad stores from N-Quads and JSON-LD sources.
package loader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/geoknoesis/rdfpath/rdf"
)

// Destination receives loaded quads. Add reports whether the quad was new.
type Destination interface {
	Add(q rdf.Quad) bool
}

// Format identifies a supported input syntax.
type Format string

const (
	FormatNQuads Format = "nquads"
	FormatJSONLD Format = "jsonld"
)

var extensions = map[string]Format{
	".nq":     FormatNQuads,
	".nquads": FormatNQuads,
	".nt":     FormatNQuads,
	".jsonld": FormatJSONLD,
	".json":   FormatJSONLD,
}

// FormatOf returns the format implied by the file extension.
func FormatOf(path string) (Format, error) {
	format, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", errors.Wrapf(rdf.ErrUnsupportedFormat, "%q", path)
	}
	return format, nil
}

// LoadNQuads reads N-Quads (or N-Triples) from r into dst and returns the number of new quads.
// The context is checked between statements.
func LoadNQuads(ctx context.Context, dst Destination, r io.Reader, opts ...Option) (int, error) {
	o := buildOptions(opts)
	dec := rdf.NewQuadReader(r, o.reader...)
	added := 0
	for {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		q, err := dec.Next()
		if err == io.EOF {
			return added, nil
		}
		if err != nil {
			return added, err
		}
		if dst.Add(q) {
			added++
		}
	}
}

// LoadFile loads a single file, choosing the syntax from its extension.
func LoadFile(ctx context.Context, dst Destination, path string, opts ...Option) (int, error) {
	o := buildOptions(opts)
	log := o.logger.WithField("file", path)

	format, err := FormatOf(path)
	if err != nil {
		log.Warnf("skipping file: %v", err)
		return 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		log.Warnf("failed to open file: %v", err)
		return 0, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	var added int
	switch format {
	case FormatJSONLD:
		base := o.base
		if base == "" {
			base = fileIRI(path)
		}
		added, err = LoadJSONLD(ctx, dst, f, base, opts...)
	default:
		added, err = LoadNQuads(ctx, dst, f, opts...)
	}
	if err != nil {
		log.WithField("added", added).Warnf("failed to load file: %v", err)
		return added, errors.Wrapf(err, "failed to load %s", path)
	}
	log.WithField("format", format).Infof("loaded %d quads", added)
	return added, nil
}

// LoadFiles loads every path in order. A failing file does not stop the others;
// all failures are returned together. Cancellation stops the remaining files.
func LoadFiles(ctx context.Context, dst Destination, paths []string, opts ...Option) (int, error) {
	var result *multierror.Error
	total := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			break
		}
		n, err := LoadFile(ctx, dst, path, opts...)
		total += n
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return total, result.ErrorOrNil()
}

func fileIRI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}
