// Package input reads and writes process descriptor files.
//
// The plain format is whitespace-separated integer triples
// "creation_time duration priority". Files ending in .yaml or .yml hold a
// "processes" list instead.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/me/cpusched/pkg/model"
)

// File is the YAML layout of an input file.
type File struct {
	Processes []model.Descriptor `yaml:"processes"`
}

// IsYAML reports whether path selects the YAML layout.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Parse reads triples until the input ends or a triple fails to parse.
// Every field is replaced by its absolute value.
func Parse(r io.Reader) ([]model.Descriptor, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var descs []model.Descriptor
	for {
		var fields [3]int
		complete := true
		for i := range fields {
			if !sc.Scan() {
				complete = false
				break
			}
			n, err := strconv.Atoi(sc.Text())
			if err != nil {
				complete = false
				break
			}
			fields[i] = n
		}
		if !complete {
			break
		}
		descs = append(descs, model.Descriptor{
			CreationTime: fields[0],
			Duration:     fields[1],
			Priority:     fields[2],
		}.Sanitize())
	}
	if err := sc.Err(); err != nil {
		return descs, fmt.Errorf("scan input: %w", err)
	}
	return descs, nil
}

// ParseYAML decodes the YAML layout and sanitizes every descriptor.
func ParseYAML(r io.Reader) ([]model.Descriptor, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml input: %w", err)
	}
	descs := make([]model.Descriptor, len(f.Processes))
	for i, d := range f.Processes {
		descs[i] = d.Sanitize()
	}
	return descs, nil
}

// ReadFile loads descriptors from path, choosing the layout by extension.
func ReadFile(path string) ([]model.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if IsYAML(path) {
		return ParseYAML(f)
	}
	return Parse(f)
}

// Write emits descs as triples, one process per line.
func Write(w io.Writer, descs []model.Descriptor) error {
	bw := bufio.NewWriter(w)
	for _, d := range descs {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", d.CreationTime, d.Duration, d.Priority); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteYAML emits descs in the YAML layout.
func WriteYAML(w io.Writer, descs []model.Descriptor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Processes: descs}); err != nil {
		return fmt.Errorf("encode yaml input: %w", err)
	}
	return enc.Close()
}

// WriteFile stores descs at path, choosing the layout by extension.
func WriteFile(path string, descs []model.Descriptor) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create input file: %w", err)
	}
	if IsYAML(path) {
		err = WriteYAML(f, descs)
	} else {
		err = Write(f, descs)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
