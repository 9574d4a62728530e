package loader

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/payloads/pkg/types"
)

const sampleJSON = `{
  "uri": "runs/7",
  "payload": {
    "roc": {"type": "vega", "data": {"mark": "line"}},
    "n_rows": {"type": "integer", "data": 1200},
    "model": {"type": "file", "data": "model.bin"},
    "loss": {"type": "matplotlib_figure", "data": "iVBORw0"},
    "notes": {"type": "markdown", "data": "# ok"}
  },
  "layout": [
    {"key": "roc", "size": "large"},
    {"key": "n_rows", "size": "small"}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"a.JSON", FormatJSON, false},
		{"a.jsonl", FormatJSONL, false},
		{"a.ndjson", FormatJSONL, false},
		{"a.yaml", FormatYAML, false},
		{"dir/a.yml", FormatYAML, false},
		{"a.csv", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "run.json", sampleJSON)

	stores, err := New(nil).LoadFile(path)
	require.NoError(t, err)
	require.Len(t, stores, 1)

	s := stores[0]
	assert.Equal(t, "runs/7", s.URI())
	assert.Equal(t, []string{"roc", "n_rows", "model", "loss", "notes"}, s.Keys())
	assert.Equal(t, []string{"roc", "loss"}, s.PlotKeys())
	assert.Equal(t, []string{"model"}, s.ArtifactKeys())
	assert.Equal(t, []string{"n_rows", "notes"}, s.InfoKeys())
	assert.Len(t, s.Layout(), 2)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := New(nil).LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileUnsupported(t *testing.T) {
	path := writeFile(t, "run.csv", "a,b")
	_, err := New(nil).LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"uri":`},
		{"payload array", `{"uri":"x","payload":[]}`},
		{"empty input", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil).Decode(strings.NewReader(tt.raw), FormatJSON)
			assert.ErrorIs(t, err, types.ErrInvalidDocument)
		})
	}
}

func TestDecodeJSONLSkipsBadLines(t *testing.T) {
	input := strings.Join([]string{
		`{"uri":"a","payload":{"x":{"type":"vega","data":null}},"layout":[]}`,
		``,
		`{not json`,
		`{"uri":"b","payload":[1,2]}`,
		`{"uri":"c","payload":{"y":{"type":"file","data":"f.txt"}}}`,
	}, "\n")

	logger, buf := bufferLogger()
	stores, err := New(logger).Decode(strings.NewReader(input), FormatJSONL)
	require.NoError(t, err)
	require.Len(t, stores, 2)

	assert.Equal(t, "a", stores[0].URI())
	assert.Equal(t, []string{"x"}, stores[0].PlotKeys())
	assert.Equal(t, "c", stores[1].URI())
	assert.Equal(t, []string{"y"}, stores[1].ArtifactKeys())

	logs := buf.String()
	assert.Contains(t, logs, "skipping malformed line")
	assert.Contains(t, logs, "line=3")
	assert.Contains(t, logs, "skipping invalid document")
	assert.Contains(t, logs, "line=4")
}

func TestDecodeJSONLEmpty(t *testing.T) {
	stores, err := New(nil).Decode(strings.NewReader(""), FormatJSONL)
	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestDecodeYAMLPreservesOrder(t *testing.T) {
	input := `
uri: runs/9
payload:
  zeta:
    type: number
    data: 1.5
  alpha:
    type: vega
    data:
      mark: bar
  beta:
    type: file
    data: out.parquet
layout:
  - key: alpha
    size: medium
`
	stores, err := New(nil).Decode(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)
	require.Len(t, stores, 1)

	s := stores[0]
	assert.Equal(t, "runs/9", s.URI())
	assert.Equal(t, []string{"zeta", "alpha", "beta"}, s.Keys())
	assert.Equal(t, []string{"alpha"}, s.PlotKeys())
	assert.Equal(t, []string{"beta"}, s.ArtifactKeys())
	assert.Equal(t, []string{"zeta"}, s.InfoKeys())
	assert.Equal(t, []types.LayoutEntry{{Key: "alpha", Size: types.SizeMedium}}, s.Layout())

	item, ok := s.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, 1.5, item.Data)
}

func TestDecodeYAMLNullPayload(t *testing.T) {
	stores, err := New(nil).Decode(strings.NewReader("uri: x\npayload: null\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Zero(t, stores[0].Len())
}

func TestDecodeYAMLInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"scalar root", "just text"},
		{"payload list", "payload:\n  - a\n  - b\n"},
		{"bad syntax", "uri: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil).Decode(strings.NewReader(tt.raw), FormatYAML)
			assert.ErrorIs(t, err, types.ErrInvalidDocument)
		})
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := New(nil).Decode(strings.NewReader("{}"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoaderReportsUnknownTypesAndDanglingLayout(t *testing.T) {
	input := `{"uri":"r","payload":{"a":{"type":"plotly","data":{}}},"layout":[{"key":"gone","size":"small"}]}`

	logger, buf := bufferLogger()
	stores, err := New(logger).Decode(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, stores, 1)

	logs := buf.String()
	assert.Contains(t, logs, "item has unknown type")
	assert.Contains(t, logs, "type=plotly")
	assert.Contains(t, logs, "layout references missing item")
	assert.Contains(t, logs, "key=gone")
}
