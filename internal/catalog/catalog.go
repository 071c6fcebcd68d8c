// Package catalog loads option catalogs from local files or S3 and seeds them
// into the option store.
package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"oss-kar/internal/model"
)

// Loader defines the interface for loading catalog sources.
type Loader interface {
	// Load reads a catalog document and returns its options.
	// Sources ending in ".gz" are gunzipped first.
	Load(ctx context.Context, source string) ([]model.Option, error)
}

// document is the on-disk catalog format.
type document struct {
	Options []model.Option `json:"options"`
}

// decode parses a catalog document from r.
func decode(r io.Reader, source string) ([]model.Option, error) {
	if strings.HasSuffix(source, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", source, err)
	}

	if doc.Options == nil {
		doc.Options = []model.Option{}
	}

	return doc.Options, nil
}
