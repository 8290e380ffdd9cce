// Package codec encodes the persisted people list. JSON is the default wire
// format; CBOR is available for compact SQLite values. Both encoders are
// deterministic: encoding a freshly decoded value reproduces its bytes.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Codec converts values to and from stored bytes.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

const (
	NameJSON = "json"
	NameCBOR = "cbor"
)

// ByName returns the codec registered under name (case-insensitive).
// An empty name selects JSON.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameJSON:
		return JSON{}, nil
	case NameCBOR:
		return CBOR{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q (want json or cbor)", name)
	}
}

// JSON is the default codec. Field order follows struct declaration order.
// HTML characters and line separators are written as-is, matching what
// browsers store, so names like "Tom & Jerry" keep their bytes across a load
// and save.
type JSON struct{}

func (JSON) Name() string { return NameJSON }

func (JSON) Marshal(v any) ([]byte, error) {
	return encodeJSON(v, "")
}

// MarshalIndent is Marshal with each element on its own line.
func (JSON) MarshalIndent(v any, indent string) ([]byte, error) {
	return encodeJSON(v, indent)
}

func encodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into raw characters. data must be valid JSON, where a
// backslash only ever starts a two-byte or \uXXXX escape.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if i+5 < len(data) && data[i+1] == 'u' {
			switch string(data[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2) so the same
// list always produces identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// CBOR encodes with fxamacker/cbor, falling back to json struct tags for
// field names.
type CBOR struct{}

func (CBOR) Name() string { return NameCBOR }

func (CBOR) Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

func (CBOR) Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
