package errors

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/simulatax/fiscalprofile/record"
)

func TestTextFormatter(t *testing.T) {
	t.Run("WithoutSource", func(t *testing.T) {
		tf := NewTextFormatter()
		out := tf.Format(record.Warning{Line: 3, Code: "short-record", Message: "record C100 has too few fields (3)"})

		assert.Equal(t, "line 3: record C100 has too few fields (3) (short-record)", out)
	})

	t.Run("WithSourceContext", func(t *testing.T) {
		source := []string{
			"|0000|017|",
			"|C100|0|1|",
			"|0150|P001|",
		}
		tf := NewTextFormatter(WithSource(source))
		out := tf.Format(record.Warning{Line: 2, Code: "short-record", Message: "record C100 has too few fields (4)"})

		assert.Contains(t, out, "line 2:")
		assert.Contains(t, out, "|C100|0|1|")
	})

	t.Run("LineZeroHasNoPrefix", func(t *testing.T) {
		tf := NewTextFormatter()
		out := tf.Format(record.Warning{Code: "family-fallback", Message: `ledger family not detected, assuming "fiscal"`})

		assert.False(t, strings.HasPrefix(out, "line"))
		assert.Contains(t, out, "family-fallback")
	})

	t.Run("FormatAllSeparatesWithBlankLines", func(t *testing.T) {
		tf := NewTextFormatter()
		out := tf.FormatAll([]record.Warning{
			{Line: 1, Code: "a", Message: "first"},
			{Line: 2, Code: "b", Message: "second"},
		})

		assert.Equal(t, 2, strings.Count(out, "("))
		assert.Contains(t, out, "\n\n")
		assert.Equal(t, "", tf.FormatAll(nil))
	})
}

func TestJSONFormatter(t *testing.T) {
	jf := NewJSONFormatter()

	out := jf.FormatAll([]record.Warning{
		{Line: 7, Code: "no-record-code", Message: "line has no record-type code"},
	})

	var decoded []struct {
		Line    int    `json:"line"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1, len(decoded))
	assert.Equal(t, 7, decoded[0].Line)
	assert.Equal(t, "no-record-code", decoded[0].Code)
}
