// Package seed loads the starter employee list a session begins with.
package seed

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"

	"empdir/internal/domain"
)

//go:embed default_seed.toml
var defaultSeed []byte

// File is the on-disk seed layout: a list of [[employee]] tables
type File struct {
	Employees []domain.Employee `toml:"employee"`
}

// Skipped describes a seed record that was dropped at load
type Skipped struct {
	Index    int
	Employee domain.Employee
	Reason   string
}

// Result is the outcome of loading a seed
type Result struct {
	Employees []domain.Employee
	Skipped   []Skipped
	Source    string // file path, or "default"
}

// Load reads the seed at path. An empty path loads the embedded default.
func Load(path string) (*Result, error) {
	if path == "" {
		res, err := Parse(bytes.NewReader(defaultSeed))
		if err != nil {
			return nil, errors.Wrap(err, "parse default seed")
		}
		res.Source = "default"
		return res, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open seed file")
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse seed file %s", path)
	}
	res.Source = path
	return res, nil
}

// Parse decodes a TOML seed and drops records the directory would refuse:
// a zero id, an empty name, or an id already seen (the first one wins).
func Parse(r io.Reader) (*Result, error) {
	var file File
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file); err != nil {
		return nil, err
	}

	res := &Result{Employees: make([]domain.Employee, 0, len(file.Employees))}
	seen := make(map[int]bool, len(file.Employees))
	for i, e := range file.Employees {
		reason := ""
		switch {
		case e.ID == 0:
			reason = "missing id"
		case e.Name == "":
			reason = "missing name"
		case seen[e.ID]:
			reason = "duplicate id"
		}
		if reason != "" {
			log.WithFields(log.Fields{"index": i, "id": e.ID, "reason": reason}).Warn("Skipping seed record")
			res.Skipped = append(res.Skipped, Skipped{Index: i, Employee: e, Reason: reason})
			continue
		}
		seen[e.ID] = true
		res.Employees = append(res.Employees, e)
	}
	return res, nil
}

// Write encodes employees in the seed layout
func Write(w io.Writer, employees []domain.Employee) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(File{Employees: employees}); err != nil {
		return errors.Wrap(err, "encode seed")
	}
	return nil
}
