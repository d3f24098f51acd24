package clubs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/football_team.json
var bundled []byte

// BundledSource names the embedded dataset in logs and errors.
const BundledSource = "bundled"

// Dataset is the loaded, normalized club list.
type Dataset struct {
	Source string
	Teams  []Team
}

// Malformed counts teams with at least one numeric field that did not parse.
func (d Dataset) Malformed() int {
	n := 0
	for _, t := range d.Teams {
		if t.Malformed() {
			n++
		}
	}
	return n
}

// Load reads the dataset at path, or the bundled one when path is empty.
func Load(path string) (Dataset, error) {
	if strings.TrimSpace(path) == "" {
		return LoadBundled()
	}

	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = file.Close() }()

	raws, err := Decode(file)
	if err != nil {
		return Dataset{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return Dataset{Source: path, Teams: NormalizeAll(raws)}, nil
}

// LoadBundled decodes the dataset compiled into the binary.
func LoadBundled() (Dataset, error) {
	raws, err := Decode(bytes.NewReader(bundled))
	if err != nil {
		return Dataset{}, fmt.Errorf("decode bundled dataset: %w", err)
	}
	return Dataset{Source: BundledSource, Teams: NormalizeAll(raws)}, nil
}

// Decode reads a JSON array of club objects. Elements that are not objects
// become empty records.
func Decode(r io.Reader) ([]RawRecord, error) {
	var elems []json.RawMessage
	if err := json.NewDecoder(r).Decode(&elems); err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, errors.New("dataset is not a JSON array")
	}

	raws := make([]RawRecord, 0, len(elems))
	for _, elem := range elems {
		var raw RawRecord
		if err := json.Unmarshal(elem, &raw); err != nil || raw == nil {
			raw = RawRecord{}
		}
		raws = append(raws, raw)
	}
	return raws, nil
}
