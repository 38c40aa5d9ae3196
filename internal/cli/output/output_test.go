package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct{}

func (fakeRenderer) Headers() []string { return []string{"FIELD", "VALUE"} }
func (fakeRenderer) Rows() [][]string {
	return [][]string{{"Version", "1.3"}, {"Xid", "42"}}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, FormatTable, fakeRenderer{}))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Version")
	assert.Contains(t, out, "1.3")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, FormatJSON, map[string]int{"xid": 42}))
	assert.JSONEq(t, `{"xid": 42}`, buf.String())
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, FormatYAML, map[string]int{"xid": 42}))
	assert.Equal(t, "xid: 42", strings.TrimSpace(buf.String()))
}
