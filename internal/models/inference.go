package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPrediction is returned when a prediction breaks the wire contract
	ErrInvalidPrediction = errors.New("invalid prediction")

	// ErrInvalidVisualizations is returned when the visualizations field is not a JSON object
	ErrInvalidVisualizations = errors.New("visualizations must be a JSON object")
)

// Prediction is a single class score returned by the classifier
type Prediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// DisplayClass returns the class name with underscores replaced by spaces
func (p Prediction) DisplayClass() string {
	return strings.ReplaceAll(p.Class, "_", " ")
}

// Percent returns the confidence as a percentage in [0, 100]
func (p Prediction) Percent() float64 {
	return p.Confidence * 100
}

// LayerData is a tensor flattened to a 2-D grid by the producer.
// Shape is informational only; Values is what gets rendered.
type LayerData struct {
	Shape  []int  `json:"shape"`
	Values Matrix `json:"values"`
}

// Empty reports whether the tensor has no renderable cells
func (l LayerData) Empty() bool {
	return len(l.Values) == 0 || len(l.Values[0]) == 0
}

// Rows returns the grid height
func (l LayerData) Rows() int {
	return len(l.Values)
}

// Cols returns the grid width, taken from the first row
func (l LayerData) Cols() int {
	if len(l.Values) == 0 {
		return 0
	}
	return len(l.Values[0])
}

// ShapeLabel joins the declared shape with " x ", e.g. "1 x 128 x 431"
func (l LayerData) ShapeLabel() string {
	parts := make([]string, len(l.Shape))
	for i, d := range l.Shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, " x ")
}

// WaveformData holds the raw audio samples sent back with a classification
type WaveformData struct {
	Values     Samples `json:"values"`
	SampleRate float64 `json:"sample_rate"`
	Duration   float64 `json:"duration"`
}

// NamedLayer pairs a layer name with its tensor
type NamedLayer struct {
	Name string    `json:"name"`
	Data LayerData `json:"data"`
}

// VisualizationData maps layer names to tensors and remembers the order in
// which names were first seen. Go maps do not keep order, and the order of
// main layers decides the column order of the layer grid.
type VisualizationData struct {
	entries []NamedLayer
	index   map[string]int
}

// NewVisualizationData builds an ordered mapping from the given layers
func NewVisualizationData(layers ...NamedLayer) VisualizationData {
	var v VisualizationData
	for _, l := range layers {
		v.Set(l.Name, l.Data)
	}
	return v
}

// Set stores data under name. A repeated name keeps its first position.
func (v *VisualizationData) Set(name string, data LayerData) {
	if v.index == nil {
		v.index = make(map[string]int)
	}
	if i, ok := v.index[name]; ok {
		v.entries[i].Data = data
		return
	}
	v.index[name] = len(v.entries)
	v.entries = append(v.entries, NamedLayer{Name: name, Data: data})
}

// Get returns the tensor stored under name
func (v VisualizationData) Get(name string) (LayerData, bool) {
	i, ok := v.index[name]
	if !ok {
		return LayerData{}, false
	}
	return v.entries[i].Data, true
}

// Len returns the number of layers
func (v VisualizationData) Len() int {
	return len(v.entries)
}

// Entries returns the layers in encounter order. The slice is a copy.
func (v VisualizationData) Entries() []NamedLayer {
	out := make([]NamedLayer, len(v.entries))
	copy(out, v.entries)
	return out
}

// MarshalJSON writes the layers as a JSON object in encounter order
func (v VisualizationData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range v.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Data)
		if err != nil {
			return nil, fmt.Errorf("visualizations[%q]: %w", e.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object token by token so key order survives
func (v *VisualizationData) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*v = VisualizationData{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrInvalidVisualizations
	}

	var out VisualizationData
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return ErrInvalidVisualizations
		}

		var layer LayerData
		if err := dec.Decode(&layer); err != nil {
			return fmt.Errorf("visualizations[%q]: %w", name, err)
		}
		out.Set(name, layer)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	*v = out
	return nil
}

// APIResponse is the classifier's reply and the single unit of view state.
// It is replaced wholesale and never patched.
type APIResponse struct {
	Predictions     []Prediction      `json:"predictions"`
	Visualizations  VisualizationData `json:"visualizations"`
	InputSpectogram LayerData         `json:"input_spectogram"`
	Waveform        WaveformData      `json:"waveform"`
}

// Validate checks the prediction invariants
func (r *APIResponse) Validate() error {
	for i, p := range r.Predictions {
		if strings.TrimSpace(p.Class) == "" {
			return fmt.Errorf("%w: predictions[%d] has an empty class", ErrInvalidPrediction, i)
		}
		if p.Confidence < 0 || p.Confidence > 1 {
			return fmt.Errorf("%w: predictions[%d] confidence %v outside [0, 1]", ErrInvalidPrediction, i, p.Confidence)
		}
	}
	return nil
}

// Top returns the first n predictions. Upstream sorts by descending confidence.
func (r *APIResponse) Top(n int) []Prediction {
	if n > len(r.Predictions) {
		n = len(r.Predictions)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Prediction, n)
	copy(out, r.Predictions[:n])
	return out
}
