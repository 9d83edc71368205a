package tui

import (
	"encoding/json"
	"errors"
	"io"
)

// JSONOutput writes one JSON object per message.
type JSONOutput struct {
	encoder *json.Encoder
}

// NewJSONOutput creates a JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{encoder: json.NewEncoder(w)}
}

type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type jsonField struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type jsonError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Context    string `json:"context,omitempty"`
}

// Success writes {"type":"success","message":...}.
func (o *JSONOutput) Success(msg string) {
	//nolint:errchkjson // interface has no error return
	_ = o.encoder.Encode(jsonMessage{Type: "success", Message: msg})
}

// Error writes {"type":"error","message":...} with the suggestion and context
// of an ActionableError when present.
func (o *JSONOutput) Error(err error) {
	out := jsonError{Type: "error", Message: err.Error()}
	var ae *ActionableError
	if errors.As(err, &ae) {
		out.Suggestion = ae.Suggestion
		out.Context = ae.Context
	}
	//nolint:errchkjson // interface has no error return
	_ = o.encoder.Encode(out)
}

// Warning writes {"type":"warning","message":...}.
func (o *JSONOutput) Warning(msg string) {
	//nolint:errchkjson // interface has no error return
	_ = o.encoder.Encode(jsonMessage{Type: "warning", Message: msg})
}

// Info writes {"type":"info","message":...}.
func (o *JSONOutput) Info(msg string) {
	//nolint:errchkjson // interface has no error return
	_ = o.encoder.Encode(jsonMessage{Type: "info", Message: msg})
}

// Field writes {"type":"field","label":...,"value":...}.
func (o *JSONOutput) Field(label, value string) {
	//nolint:errchkjson // interface has no error return
	_ = o.encoder.Encode(jsonField{Type: "field", Label: label, Value: value})
}

// JSON writes v on a single line.
func (o *JSONOutput) JSON(v any) error {
	return o.encoder.Encode(v)
}

var _ Output = (*JSONOutput)(nil)
