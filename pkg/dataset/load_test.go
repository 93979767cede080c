package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/stackchart/pkg/errors"
)

const sampleTOML = `
[[dataset]]
name = "sales"

[[dataset.records]]
month = "Jan"
value = 30

[[dataset.records]]
month = "Feb"
value = 45.5

[[dataset]]
name = "shares"
records = [
  { name = "A", value = 0 },
  { category = "B", value = 0 },
]
`

func TestDecodeTOML(t *testing.T) {
	c, err := Decode(strings.NewReader(sampleTOML), FormatTOML, "")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	sales, _ := c.Get("sales")
	want := []Record{{"Jan", 30}, {"Feb", 45.5}}
	for i, r := range sales.Records {
		if r != want[i] {
			t.Errorf("sales[%d] = %+v, want %+v", i, r, want[i])
		}
	}

	shares, _ := c.Get("shares")
	if keys := shares.Keys(); keys[0] != "A" || keys[1] != "B" {
		t.Errorf("shares keys = %v, want [A B]", keys)
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNames []Selection
		wantLen   int
	}{
		{
			name:      "object",
			input:     `{"datasets":[{"name":"sales","records":[{"month":"Jan","value":30},{"month":"Feb","value":45}]}]}`,
			wantNames: []Selection{"sales"},
			wantLen:   2,
		},
		{
			name:      "bare array",
			input:     `[{"key":"a","value":1},{"key":"b","value":2},{"key":"c","value":3}]`,
			wantNames: []Selection{"fallback"},
			wantLen:   3,
		},
		{
			name:      "empty array",
			input:     `[]`,
			wantNames: []Selection{"fallback"},
			wantLen:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode(strings.NewReader(tt.input), FormatJSON, "fallback")
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			names := c.Names()
			if len(names) != len(tt.wantNames) || names[0] != tt.wantNames[0] {
				t.Fatalf("Names() = %v, want %v", names, tt.wantNames)
			}
			ds, _ := c.Get(names[0])
			if ds.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", ds.Len(), tt.wantLen)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		format   string
		wantCode errors.Code
	}{
		{"bad format", "", "yaml", errors.ErrCodeInvalidFormat},
		{"bad json", "{", FormatJSON, errors.ErrCodeInvalidDataset},
		{"bad toml", "[[dataset", FormatTOML, errors.ErrCodeInvalidDataset},
		{"duplicate keys", `[{"key":"a","value":1},{"key":"a","value":2}]`, FormatJSON, errors.ErrCodeInvalidDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format, "x")
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("Decode() code = %v, want %v (err %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Default() != "sales" {
		t.Errorf("Default() = %v, want sales", c.Default())
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Sample()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	c, err := Decode(&buf, FormatTOML, "")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Len() != Sample().Len() {
		t.Errorf("Len() = %d, want %d", c.Len(), Sample().Len())
	}
	sales, _ := c.Get(SelectionSales)
	if sales.Records[1] != (Record{"Feb", 45}) {
		t.Errorf("sales[1] = %+v, want {Feb 45}", sales.Records[1])
	}
}
