// Package shareurl encodes selections into shareable configuration links and back.
//
// Link format: /config?engine=<id>&color=<id>&wheels=<id>&extras=<id>-<id>-...
// Every parameter is optional. Extras keep selection order.
package shareurl

import (
	"net/url"
	"strconv"
	"strings"

	"oss-kar/internal/model"
)

// Path is the path shareable links point at.
const Path = "/config"

// Query parameter names.
const (
	ParamEngine = "engine"
	ParamColor  = "color"
	ParamWheels = "wheels"
	ParamExtras = "extras"
)

// ExtrasDelimiter separates extras ids.
const ExtrasDelimiter = "-"

// Encode returns the path and query for sel. An empty selection yields Path alone.
func Encode(sel model.Selection) string {
	q := Query(sel)
	if q == "" {
		return Path
	}
	return Path + "?" + q
}

// Query returns the query string for sel without a leading '?'.
// Parameters appear in the order engine, color, wheels, extras.
func Query(sel model.Selection) string {
	parts := make([]string, 0, 4)
	add := func(key string, id *int64) {
		if id != nil {
			parts = append(parts, key+"="+strconv.FormatInt(*id, 10))
		}
	}
	add(ParamEngine, sel.EngineID)
	add(ParamColor, sel.PaintID)
	add(ParamWheels, sel.WheelsID)

	if len(sel.ExtrasIDs) > 0 {
		ids := make([]string, len(sel.ExtrasIDs))
		for i, id := range sel.ExtrasIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		parts = append(parts, ParamExtras+"="+strings.Join(ids, ExtrasDelimiter))
	}

	return strings.Join(parts, "&")
}

// Decode parses a full link, a path with query, or a bare query string.
// Values that are not non-negative integers are dropped: a bad single id
// becomes nil and a bad extras segment is skipped.
func Decode(raw string) model.Selection {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[i+1:]
	}
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}

	sel := model.Selection{ExtrasIDs: []int64{}}

	// ParseQuery keeps every pair it could parse, so its error is not fatal here.
	values, _ := url.ParseQuery(raw)

	sel.EngineID = parseID(values.Get(ParamEngine))
	sel.PaintID = parseID(values.Get(ParamColor))
	sel.WheelsID = parseID(values.Get(ParamWheels))

	if extras := values.Get(ParamExtras); extras != "" {
		for _, segment := range strings.Split(extras, ExtrasDelimiter) {
			if id := parseID(segment); id != nil {
				sel.ExtrasIDs = append(sel.ExtrasIDs, *id)
			}
		}
	}

	return sel
}

// FromValues decodes already parsed query values.
func FromValues(values url.Values) model.Selection {
	return Decode(values.Encode())
}

func parseID(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
