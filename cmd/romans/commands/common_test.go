package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// captureIO points the handler streams at buffers for the duration of the test.
func captureIO(t *testing.T, input string) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	savedIn, savedOut, savedErr := stdin, stdout, stderr
	stdin, stdout, stderr = strings.NewReader(input), out, errOut
	t.Cleanup(func() {
		stdin, stdout, stderr = savedIn, savedOut, savedErr
	})
	return out, errOut
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]int{"value": 42}

	t.Run("json", func(t *testing.T) {
		out, _ := captureIO(t, "")
		require.NoError(t, OutputStructured(data, FormatJSON))
		var got map[string]int
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("yaml", func(t *testing.T) {
		out, _ := captureIO(t, "")
		require.NoError(t, OutputStructured(data, FormatYAML))
		var got map[string]int
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("text is rejected", func(t *testing.T) {
		captureIO(t, "")
		assert.Error(t, OutputStructured(data, FormatText))
	})
}

func TestItemArgs(t *testing.T) {
	t.Run("positional", func(t *testing.T) {
		captureIO(t, "ignored\n")
		got, err := itemArgs([]string{"X", "V"})
		require.NoError(t, err)
		assert.Equal(t, []string{"X", "V"}, got)
	})

	t.Run("stdin", func(t *testing.T) {
		captureIO(t, "X\n\n  V \n")
		got, err := itemArgs([]string{"-"})
		require.NoError(t, err)
		assert.Equal(t, []string{"X", "V"}, got)
	})

	t.Run("stdin read failure", func(t *testing.T) {
		captureIO(t, "")
		stdin = io.MultiReader(strings.NewReader("X\n"), errReader{})
		_, err := itemArgs([]string{"-"})
		assert.ErrorContains(t, err, "reading stdin")
	})
}

func TestSummarize(t *testing.T) {
	t.Run("all passed", func(t *testing.T) {
		_, errOut := captureIO(t, "")
		require.NoError(t, summarize("numerals", 1200, 0, false))
		assert.Equal(t, "✓ 1,200 numerals processed\n", errOut.String())
	})

	t.Run("failures", func(t *testing.T) {
		_, errOut := captureIO(t, "")
		err := summarize("values", 3, 1, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrItemsFailed)
		assert.Equal(t, "1 of 3 values: one or more items failed", err.Error())
		assert.Equal(t, "✗ 1 of 3 values failed\n", errOut.String())
	})

	t.Run("quiet", func(t *testing.T) {
		_, errOut := captureIO(t, "")
		assert.Error(t, summarize("values", 2, 2, true))
		assert.Empty(t, errOut.String())
	})
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }
