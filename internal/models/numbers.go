package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Python's json module writes NaN, Infinity and -Infinity as bare literals,
// which encoding/json rejects. The payload is rewritten so those literals
// become strings, and Samples/Matrix accept the strings back as floats.

// Samples is a sequence of audio samples that may hold non-finite values.
// A null sample decodes as NaN so it is filtered like any invalid sample.
type Samples []float64

// Matrix is a 2-D grid of tensor values. Null cells decode as 0.
type Matrix [][]float64

// UnmarshalJSON accepts numbers, null and the non-finite string forms
func (s *Samples) UnmarshalJSON(b []byte) error {
	var raw []any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = nil
		return nil
	}

	out := make(Samples, len(raw))
	for i, r := range raw {
		v, err := decodeFloat(r, math.NaN())
		if err != nil {
			return fmt.Errorf("values[%d]: %w", i, err)
		}
		out[i] = v
	}
	*s = out
	return nil
}

// MarshalJSON writes non-finite samples as strings
func (s Samples) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = encodeFloat(v)
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts numbers, null and the non-finite string forms
func (m *Matrix) UnmarshalJSON(b []byte) error {
	var raw [][]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*m = nil
		return nil
	}

	out := make(Matrix, len(raw))
	for i, row := range raw {
		out[i] = make([]float64, len(row))
		for j, r := range row {
			v, err := decodeFloat(r, 0)
			if err != nil {
				return fmt.Errorf("values[%d][%d]: %w", i, j, err)
			}
			out[i][j] = v
		}
	}
	*m = out
	return nil
}

// MarshalJSON writes non-finite cells as strings
func (m Matrix) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	out := make([][]any, len(m))
	for i, row := range m {
		out[i] = make([]any, len(row))
		for j, v := range row {
			out[i][j] = encodeFloat(v)
		}
	}
	return json.Marshal(out)
}

func decodeFloat(r any, null float64) (float64, error) {
	switch v := r.(type) {
	case nil:
		return null, nil
	case float64:
		return v, nil
	case string:
		switch v {
		case "NaN":
			return math.NaN(), nil
		case "Infinity", "+Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unexpected %T", r)
	}
}

func encodeFloat(v float64) any {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return v
}

// SanitizeNonFinite quotes bare NaN, Infinity and -Infinity literals that sit
// outside JSON strings. Everything else is copied unchanged.
func SanitizeNonFinite(b []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(b))

	inString := false
	escaped := false
	for i := 0; i < len(b); i++ {
		c := b[i]
		if inString {
			out.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			out.WriteByte(c)
		case c == 'N' && bytes.HasPrefix(b[i:], []byte("NaN")):
			out.WriteString(`"NaN"`)
			i += len("NaN") - 1
		case c == 'I' && bytes.HasPrefix(b[i:], []byte("Infinity")):
			out.WriteString(`"Infinity"`)
			i += len("Infinity") - 1
		case c == '-' && bytes.HasPrefix(b[i:], []byte("-Infinity")):
			out.WriteString(`"-Infinity"`)
			i += len("-Infinity") - 1
		default:
			out.WriteByte(c)
		}
	}
	return out.Bytes()
}

// Decode unmarshals a classifier payload into v after quoting non-finite literals
func Decode(b []byte, v any) error {
	return json.Unmarshal(SanitizeNonFinite(b), v)
}

// DecodeResponse reads and decodes a full classifier response
func DecodeResponse(r io.Reader) (*APIResponse, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	var resp APIResponse
	if err := Decode(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}
