package util

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadMappingFile(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		want    map[string]any
		wantErr error
	}{
		{
			name: "json document",
			path: write("base.json", `{"station": "blue-oak", "sensors": {"temp": true}}`),
			want: map[string]any{"station": "blue-oak", "sensors": map[string]any{"temp": true}},
		},
		{
			name: "yaml document",
			path: write("override.yaml", "station: red-pine\nsensors:\n  humidity: true\n"),
			want: map[string]any{"station": "red-pine", "sensors": map[string]any{"humidity": true}},
		},
		{
			name: "yml extension",
			path: write("short.yml", "a: 1\n"),
			want: map[string]any{"a": 1},
		},
		{
			name: "empty yaml",
			path: write("empty.yaml", ""),
			want: map[string]any{},
		},
		{
			name:    "top level list",
			path:    write("list.json", `[1, 2, 3]`),
			wantErr: ErrNotMapping,
		},
		{
			name:    "unsupported extension",
			path:    write("notes.toml", "a = 1\n"),
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "missing file",
			path:    filepath.Join(tmpDir, "missing.json"),
			wantErr: fs.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadMappingFile(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ReadMappingFile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadMappingFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadMappingFile() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestWriteMappingFile_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	m := map[string]any{"station": "blue-oak", "sensors": map[string]any{"temp": true}}

	for _, format := range []Format{FormatJSON, FormatYAML} {
		path := filepath.Join(tmpDir, "out."+string(format))
		if err := WriteMappingFile(path, m, format); err != nil {
			t.Fatalf("WriteMappingFile(%s) error = %v", format, err)
		}
		got, err := ReadMappingFile(path)
		if err != nil {
			t.Fatalf("ReadMappingFile(%s) error = %v", format, err)
		}
		if !reflect.DeepEqual(got, m) {
			t.Errorf("round trip through %s = %#v, want %#v", format, got, m)
		}
	}
}

func TestEncodeMapping(t *testing.T) {
	m := map[string]any{"b": map[string]any{"x": 1}}

	var buf bytes.Buffer
	if err := EncodeMapping(&buf, m, FormatJSON); err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"b\": {\n    \"x\": 1\n  }\n}\n"; buf.String() != want {
		t.Errorf("EncodeMapping(json) = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := EncodeMapping(&buf, m, FormatYAML); err != nil {
		t.Fatal(err)
	}
	if want := "b:\n  x: 1\n"; buf.String() != want {
		t.Errorf("EncodeMapping(yaml) = %q, want %q", buf.String(), want)
	}

	if err := EncodeMapping(&buf, m, "toml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("EncodeMapping(toml) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
