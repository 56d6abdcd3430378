// Package jobs loads the CI jobs whose descriptions are rendered.
//
// Jobs are read from JSON or TOML files, or from piped stdin:
//
//	[{"name": "build", "description": "Nightly<br/>Owner: infra"},
//	 {"name": "deploy", "description": null}]
//
//	[[job]]
//	name = "build"
//	description = "Nightly<br/>Owner: infra"
//
// A null or missing description is absent, which is rendered differently
// from an empty description.
package jobs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/desccol/internal/description"
)

// Format is a jobs file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrNoInput is returned by ReadPiped when stdin is a terminal.
var ErrNoInput = errors.New("no jobs file given and stdin is not piped")

// Job is a CI job as shown in a list view.
type Job struct {
	JobName string  `json:"name" toml:"name"`
	Desc    *string `json:"description" toml:"description"`
}

// Name returns the job name.
func (j *Job) Name() string {
	if j == nil {
		return ""
	}
	return j.JobName
}

// Description returns the job description, absent if unset.
func (j *Job) Description() description.Text {
	if j == nil {
		return description.None()
	}
	return description.FromPtr(j.Desc)
}

// tomlFile is the TOML layout: a list of [[job]] tables.
type tomlFile struct {
	Jobs []*Job `toml:"job"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported jobs file %q: must end in .json or .toml", path)
	}
}

// Decode reads jobs in the given format.
func Decode(r io.Reader, format Format) ([]*Job, error) {
	var jobs []*Job
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&jobs); err != nil {
			return nil, fmt.Errorf("decode json jobs: %w", err)
		}
	case FormatTOML:
		var f tomlFile
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("decode toml jobs: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml jobs: unknown key %q", undecoded[0].String())
		}
		jobs = f.Jobs
	default:
		return nil, fmt.Errorf("unknown jobs format %q", format)
	}

	for i, j := range jobs {
		if j == nil {
			return nil, fmt.Errorf("job %d: null entry", i)
		}
		if j.JobName == "" {
			return nil, fmt.Errorf("job %d: missing name", i)
		}
	}
	return jobs, nil
}

// Load reads jobs from a file, picking the format from its extension.
func Load(path string) ([]*Job, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read jobs: %w", err)
	}
	jobs, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return jobs, nil
}

// ReadPiped reads JSON jobs from f if it is not a terminal.
// Returns ErrNoInput for an interactive terminal.
func ReadPiped(f *os.File) ([]*Job, error) {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return nil, ErrNoInput
	}
	return Decode(f, FormatJSON)
}

// Find returns the job with the given name.
func Find(jobs []*Job, name string) (*Job, bool) {
	for _, j := range jobs {
		if j.JobName == name {
			return j, true
		}
	}
	return nil, false
}
