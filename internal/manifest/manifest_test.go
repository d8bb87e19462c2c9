package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vertex"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParse_Defaults(t *testing.T) {
	m, err := Parse([]byte(`
attributes:
  - name: position
    format: Float32x3
    file: positions.bin
  - name: uv
    format: float32x2
    file: uvs.bin
    elementSize: 16
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.StepMode != StepVertex {
		t.Errorf("StepMode = %q, want %q", m.StepMode, StepVertex)
	}
	if m.StepModeValue() != gputypes.VertexStepModeVertex {
		t.Errorf("StepModeValue() = %v, want Vertex", m.StepModeValue())
	}
	if got := m.Attributes[0].ElementSize; got != 12 {
		t.Errorf("position ElementSize = %d, want format size 12", got)
	}
	if got := m.Attributes[1].ElementSize; got != 16 {
		t.Errorf("uv ElementSize = %d, want 16", got)
	}
	if got := m.Attributes[1].VertexFormat(); got != gputypes.VertexFormatFloat32x2 {
		t.Errorf("uv VertexFormat() = %v, want Float32x2", got)
	}
}

func TestParse_Instance(t *testing.T) {
	m, err := Parse([]byte(`
stepMode: Instance
attributes:
  - {name: offset, format: Float32x2, file: offsets.bin}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.StepModeValue() != gputypes.VertexStepModeInstance {
		t.Errorf("StepModeValue() = %v, want Instance", m.StepModeValue())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"NoAttributes", `stepMode: vertex`, "no attributes"},
		{"BadStepMode", "stepMode: sideways\nattributes: [{name: a, format: Float32, file: a.bin}]", "step mode"},
		{"NoName", `attributes: [{format: Float32, file: a.bin}]`, "has no name"},
		{"Duplicate", `attributes: [{name: a, format: Float32, file: a.bin}, {name: a, format: Float32, file: b.bin}]`, "listed twice"},
		{"NoFile", `attributes: [{name: a, format: Float32}]`, "has no file"},
		{"BadFormat", `attributes: [{name: a, format: Float64, file: a.bin}]`, "unknown vertex format"},
		{"NegativeSize", `attributes: [{name: a, format: Float32, file: a.bin, elementSize: -4}]`, "negative"},
		{"NotMultiple", `attributes: [{name: a, format: Float32x3, file: a.bin, elementSize: 16}]`, "not a multiple"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Parse() error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("attributes: [")); err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Parse(malformed) error = %v, want a decode error", err)
	}
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mesh.yaml", []byte(`
attributes:
  - {name: id, format: Uint32, file: ids.bin}
`))

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Output != "mesh.vbuf" {
		t.Errorf("Output = %q, want mesh.vbuf", m.Output)
	}
	if got := m.Resolve("ids.bin"); got != filepath.Join(dir, "ids.bin") {
		t.Errorf("Resolve() = %q", got)
	}
	abs := filepath.Join(dir, "abs.bin")
	if got := m.Resolve(abs); got != abs {
		t.Errorf("Resolve(abs) = %q, want %q", got, abs)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestManifest_Builder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", []byte{1, 2, 3, 4, 5, 6, 7, 8})
	writeFile(t, dir, "b.bin", []byte{9, 10, 11, 12})
	path := writeFile(t, dir, "mesh.yaml", []byte(`
attributes:
  - {name: a, format: Unorm8x4, file: a.bin}
  - {name: b, format: Uint8x2, file: b.bin}
`))

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	b, err := m.Builder()
	if err != nil {
		t.Fatalf("Builder() error = %v", err)
	}
	info, it, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if info.Stride != 6 {
		t.Errorf("Stride = %d, want 6", info.Stride)
	}
	want := []byte{1, 2, 3, 4, 9, 10, 5, 6, 7, 8, 11, 12}
	if got := it.Collect(); string(got) != string(want) {
		t.Errorf("bytes = %v, want %v", got, want)
	}
}

func TestManifest_BuilderErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "short.bin", []byte{1, 2, 3})
	path := writeFile(t, dir, "mesh.yaml", []byte(`
attributes:
  - {name: a, format: Float32, file: short.bin}
`))
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := m.Builder(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Builder() error = %v, want ErrInvalid", err)
	}

	m.Attributes[0].File = "absent.bin"
	if _, err := m.Builder(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Builder() error = %v, want ErrNotExist", err)
	}
}

func TestManifest_BuilderMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", make([]byte, 8))
	writeFile(t, dir, "b.bin", make([]byte, 12))
	path := writeFile(t, dir, "mesh.yaml", []byte(`
attributes:
  - {name: a, format: Float32, file: a.bin}
  - {name: b, format: Float32, file: b.bin}
`))
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	b, err := m.Builder()
	if err != nil {
		t.Fatalf("Builder() error = %v", err)
	}
	if _, _, err := b.Build(); !errors.Is(err, vertex.ErrVertexCountMismatch) {
		t.Errorf("Build() error = %v, want ErrVertexCountMismatch", err)
	}
}
