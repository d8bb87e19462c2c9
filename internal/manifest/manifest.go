// Package manifest loads the YAML files vweave uses to describe a set of
// raw attribute files.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/vertex"
)

// Step modes accepted in a manifest.
const (
	StepVertex   = "vertex"
	StepInstance = "instance"
)

// OutputExt is appended to the manifest name when no output is given.
const OutputExt = ".vbuf"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("manifest: invalid")

// Manifest lists the attributes of one interleaved buffer.
type Manifest struct {
	StepMode   string      `yaml:"stepMode,omitempty"`
	Shader     string      `yaml:"shader,omitempty"`
	EntryPoint string      `yaml:"entryPoint,omitempty"`
	Output     string      `yaml:"output,omitempty"`
	Attributes []Attribute `yaml:"attributes"`

	dir string
}

// Attribute is one raw attribute file.
type Attribute struct {
	Name        string `yaml:"name"`
	Format      string `yaml:"format"`
	File        string `yaml:"file"`
	ElementSize int    `yaml:"elementSize,omitempty"`

	format gputypes.VertexFormat
}

// Load reads, defaults and validates the manifest at path. Relative file
// names inside it are resolved against the manifest's directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	if m.Output == "" {
		m.Output = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + OutputExt
	}
	return m, nil
}

// Parse decodes and validates manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	m.normalize()
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) normalize() {
	m.StepMode = strings.ToLower(strings.TrimSpace(m.StepMode))
	if m.StepMode == "" {
		m.StepMode = StepVertex
	}
}

func (m *Manifest) validate() error {
	switch m.StepMode {
	case StepVertex, StepInstance:
	default:
		return fmt.Errorf("%w: step mode %q", ErrInvalid, m.StepMode)
	}
	if len(m.Attributes) == 0 {
		return fmt.Errorf("%w: no attributes", ErrInvalid)
	}

	seen := make(map[string]bool, len(m.Attributes))
	for i := range m.Attributes {
		a := &m.Attributes[i]
		if a.Name == "" {
			return fmt.Errorf("%w: attribute %d has no name", ErrInvalid, i)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: attribute %q listed twice", ErrInvalid, a.Name)
		}
		seen[a.Name] = true

		if a.File == "" {
			return fmt.Errorf("%w: attribute %q has no file", ErrInvalid, a.Name)
		}
		f, err := vertex.ParseFormat(a.Format)
		if err != nil {
			return fmt.Errorf("%w: attribute %q: %w", ErrInvalid, a.Name, err)
		}
		a.format = f

		if a.ElementSize < 0 {
			return fmt.Errorf("%w: attribute %q has negative element size", ErrInvalid, a.Name)
		}
		if a.ElementSize == 0 {
			a.ElementSize = int(f.Size())
		}
		if a.ElementSize%int(f.Size()) != 0 {
			return fmt.Errorf("%w: attribute %q: element size %d is not a multiple of %v (%d bytes)",
				ErrInvalid, a.Name, a.ElementSize, f, f.Size())
		}
	}
	return nil
}

// VertexFormat returns the parsed format of the attribute.
func (a *Attribute) VertexFormat() gputypes.VertexFormat {
	return a.format
}

// StepModeValue returns the manifest step mode as a gputypes value.
func (m *Manifest) StepModeValue() gputypes.VertexStepMode {
	if m.StepMode == StepInstance {
		return gputypes.VertexStepModeInstance
	}
	return gputypes.VertexStepModeVertex
}

// Resolve returns name relative to the manifest directory.
func (m *Manifest) Resolve(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(m.dir, name)
}

// Builder reads every attribute file and registers it with a new
// vertex.Builder in manifest order.
func (m *Manifest) Builder() (*vertex.Builder, error) {
	b := vertex.NewBuilder().StepMode(m.StepModeValue())
	for i := range m.Attributes {
		a := &m.Attributes[i]
		data, err := os.ReadFile(m.Resolve(a.File))
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		if len(data)%a.ElementSize != 0 {
			return nil, fmt.Errorf("%w: attribute %q: %s is %d bytes, not a multiple of %d",
				ErrInvalid, a.Name, a.File, len(data), a.ElementSize)
		}
		b.Add(vertex.NewAttribute(a.Name, a.format), vertex.Bytes(data, a.ElementSize))
	}
	return b, nil
}
