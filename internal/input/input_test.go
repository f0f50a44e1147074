package input

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/me/cpusched/pkg/model"
)

func desc(creation, duration, priority int) model.Descriptor {
	return model.Descriptor{CreationTime: creation, Duration: duration, Priority: priority}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []model.Descriptor
	}{
		{
			name: "one per line",
			in:   "0 3 0\n0 2 0\n0 4 0\n",
			want: []model.Descriptor{desc(0, 3, 0), desc(0, 2, 0), desc(0, 4, 0)},
		},
		{
			name: "free layout",
			in:   "  5 1\n2   7\t4 3 ",
			want: []model.Descriptor{desc(5, 1, 2), desc(7, 4, 3)},
		},
		{
			name: "negative values sanitized",
			in:   "-2 -3 -1",
			want: []model.Descriptor{desc(2, 3, 1)},
		},
		{
			name: "stops at first bad triple",
			in:   "0 1 0\n1 x 0\n2 2 2\n",
			want: []model.Descriptor{desc(0, 1, 0)},
		},
		{
			name: "incomplete trailing triple ignored",
			in:   "0 1 0\n4 4",
			want: []model.Descriptor{desc(0, 1, 0)},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	in := `processes:
  - creation_time: 0
    duration: 4
    priority: 1
  - creation_time: -2
    duration: 3
    priority: 0
`
	got, err := ParseYAML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	want := []model.Descriptor{desc(0, 4, 1), desc(2, 3, 0)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseYAML() = %v, want %v", got, want)
	}

	if _, err := ParseYAML(strings.NewReader("processes: {")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestWrite(t *testing.T) {
	descs := []model.Descriptor{desc(0, 3, 1), desc(4, 1, 0)}
	var buf bytes.Buffer
	if err := Write(&buf, descs); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "0 3 1\n4 1 0\n" {
		t.Errorf("Write() = %q", buf.String())
	}
}

func TestFileRoundTrip(t *testing.T) {
	descs := []model.Descriptor{desc(1, 2, 3), desc(0, 5, 0)}
	for _, name := range []string{"input.txt", "input.yaml", "input.YML"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := WriteFile(path, descs); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if !reflect.DeepEqual(got, descs) {
				t.Errorf("ReadFile() = %v, want %v", got, descs)
			}
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
