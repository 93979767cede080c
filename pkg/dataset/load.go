package dataset

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// rawFile is the on-disk shape shared by the TOML and JSON readers.
type rawFile struct {
	Datasets []rawSet `json:"datasets" toml:"dataset"`
}

type rawSet struct {
	Name    string      `json:"name" toml:"name"`
	Records []rawRecord `json:"records" toml:"records"`
}

// rawRecord accepts the key under any of the names the sample data uses.
type rawRecord struct {
	Key      string   `json:"key,omitempty" toml:"key,omitempty"`
	Name     string   `json:"name,omitempty" toml:"name,omitempty"`
	Month    string   `json:"month,omitempty" toml:"month,omitempty"`
	Category string   `json:"category,omitempty" toml:"category,omitempty"`
	Value    *float64 `json:"value" toml:"value"`
}

func (r rawRecord) record() Record {
	key := r.Key
	for _, alt := range []string{r.Name, r.Month, r.Category} {
		if key == "" {
			key = alt
		}
	}
	rec := Record{Key: key}
	if r.Value != nil {
		rec.Value = *r.Value
	}
	return rec
}

// Load reads a collection from a .toml or .json file.
func Load(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Collection{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset file %s", path)
		}
		return Collection{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Decode(bytes.NewReader(data), format, base)
}

// Decode reads a collection in the given format. JSON input may also be a
// bare array of records, which becomes a single dataset named fallbackName.
func Decode(r io.Reader, format, fallbackName string) (Collection, error) {
	var raw rawFile
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
			return Collection{}, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode toml")
		}
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return Collection{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read json")
		}
		if err := decodeJSON(data, fallbackName, &raw); err != nil {
			return Collection{}, err
		}
	default:
		return Collection{}, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported dataset format %q (must be 'toml' or 'json')", format)
	}

	sets := make([]Dataset, 0, len(raw.Datasets))
	for _, rs := range raw.Datasets {
		ds := Dataset{Name: rs.Name, Records: make([]Record, 0, len(rs.Records))}
		for _, rr := range rs.Records {
			ds.Records = append(ds.Records, rr.record())
		}
		sets = append(sets, ds)
	}
	return NewCollection(sets...)
}

func decodeJSON(data []byte, fallbackName string, raw *rawFile) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []rawRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode json records")
		}
		raw.Datasets = []rawSet{{Name: fallbackName, Records: records}}
		return nil
	}
	if err := json.Unmarshal(trimmed, raw); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode json")
	}
	return nil
}

// Encode writes the collection as TOML.
func Encode(w io.Writer, c Collection) error {
	var raw rawFile
	for _, ds := range c.sets {
		rs := rawSet{Name: ds.Name, Records: make([]rawRecord, len(ds.Records))}
		for i, rec := range ds.Records {
			v := rec.Value
			rs.Records[i] = rawRecord{Key: rec.Key, Value: &v}
		}
		raw.Datasets = append(raw.Datasets, rs)
	}
	if err := toml.NewEncoder(w).Encode(raw); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
	}
	return nil
}
