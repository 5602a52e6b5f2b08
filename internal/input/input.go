// Package input sniffs and decodes the documents the CLI renders.
package input

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown Format = iota
	JSON           // one or more concatenated JSON values
	YAML           // a YAML stream, possibly with several documents
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ErrNoDocuments is returned when the input holds nothing to render.
var ErrNoDocuments = errors.New("no documents in input")

// Sniff examines the first non-blank byte of input to determine format.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}
	if data[0] == '{' || data[0] == '[' {
		return JSON
	}
	return YAML
}

// Decode sniffs data and decodes every document it contains.
func Decode(data []byte) ([]any, Format, error) {
	format := Sniff(data)
	var (
		docs []any
		err  error
	)
	switch format {
	case JSON:
		docs, err = decodeJSON(data)
	case YAML:
		docs, err = decodeYAML(data)
	}
	if err != nil {
		return nil, format, err
	}
	if len(docs) == 0 {
		return nil, format, ErrNoDocuments
	}
	return docs, format, nil
}

func decodeJSON(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var docs []any
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, errors.Wrapf(err, "decoding JSON document %d", len(docs)+1)
		}
		docs = append(docs, normalizeNumbers(doc))
	}
}

func decodeYAML(data []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []any
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, errors.Wrapf(err, "decoding YAML document %d", len(docs)+1)
		}
		docs = append(docs, doc)
	}
}

// normalizeNumbers replaces json.Number with int64 where the literal is an
// integer and float64 otherwise, so that JSON and YAML input render alike.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
	}
	return v
}
