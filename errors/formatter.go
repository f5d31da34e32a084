// Package errors renders extraction warnings for different consumers. The
// engine collects structural warnings instead of logging or raising them;
// this package is the presentation layer that turns the collected list into
// command-line text (with source context) or structured JSON.
package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/simulatax/fiscalprofile/record"
)

// Formatter renders warnings for output.
type Formatter interface {
	// Format renders a single warning.
	Format(w record.Warning) string

	// FormatAll renders multiple warnings.
	FormatAll(ws []record.Warning) string
}

// TextFormatter renders warnings for command-line output. When source lines
// are attached, each warning shows the offending line under the message.
type TextFormatter struct {
	sourceLines []string
}

// TextOption configures a TextFormatter.
type TextOption func(*TextFormatter)

// WithSource attaches the source lines so warnings can show context.
func WithSource(lines []string) TextOption {
	return func(tf *TextFormatter) { tf.sourceLines = lines }
}

// NewTextFormatter creates a text formatter.
func NewTextFormatter(opts ...TextOption) *TextFormatter {
	tf := &TextFormatter{}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format renders one warning, with the source line when available.
func (tf *TextFormatter) Format(w record.Warning) string {
	var buf bytes.Buffer

	if w.Line > 0 {
		fmt.Fprintf(&buf, "line %d: %s (%s)", w.Line, w.Message, w.Code)
	} else {
		fmt.Fprintf(&buf, "%s (%s)", w.Message, w.Code)
	}

	if w.Line > 0 && w.Line <= len(tf.sourceLines) {
		source := strings.TrimRight(tf.sourceLines[w.Line-1], "\r\n")
		if source != "" {
			fmt.Fprintf(&buf, "\n  %6d | %s", w.Line, source)
		}
	}

	return buf.String()
}

// FormatAll renders warnings separated by blank lines.
func (tf *TextFormatter) FormatAll(ws []record.Warning) string {
	if len(ws) == 0 {
		return ""
	}

	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = tf.Format(w)
	}
	return strings.Join(parts, "\n\n")
}

// JSONFormatter renders warnings as structured JSON for API consumers.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonWarning struct {
	Line    int    `json:"line"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Format renders one warning as a JSON object.
func (jf *JSONFormatter) Format(w record.Warning) string {
	out, err := json.Marshal(jsonWarning{Line: w.Line, Code: w.Code, Message: w.Message})
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, w.Message)
	}
	return string(out)
}

// FormatAll renders warnings as a JSON array.
func (jf *JSONFormatter) FormatAll(ws []record.Warning) string {
	list := make([]jsonWarning, len(ws))
	for i, w := range ws {
		list[i] = jsonWarning{Line: w.Line, Code: w.Code, Message: w.Message}
	}
	out, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(out)
}
