package shader

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

var (
	// ErrNoVertexEntryPoint is returned when the source has no matching
	// @vertex entry point.
	ErrNoVertexEntryPoint = errors.New("shader: no vertex entry point")

	// ErrUnsupportedInputType is returned for located inputs that are not
	// 32-bit scalars or vectors.
	ErrUnsupportedInputType = errors.New("shader: unsupported vertex input type")
)

// ReflectWGSL parses WGSL source and returns the located inputs of the
// named @vertex entry point. An empty entryPoint selects the first vertex
// entry point. Builtin inputs such as @builtin(vertex_index) are skipped.
func ReflectWGSL(source, entryPoint string) (*Interface, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("shader: parse: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("shader: lower: %w", err)
	}
	return reflectModule(module, entryPoint)
}

func reflectModule(module *ir.Module, entryPoint string) (*Interface, error) {
	ep := findVertexEntryPoint(module, entryPoint)
	if ep == nil {
		if entryPoint == "" {
			return nil, ErrNoVertexEntryPoint
		}
		return nil, fmt.Errorf("%w: %q", ErrNoVertexEntryPoint, entryPoint)
	}

	iface := &Interface{EntryPoint: ep.Name}
	for _, arg := range ep.Function.Arguments {
		if arg.Binding != nil {
			loc, ok := (*arg.Binding).(ir.LocationBinding)
			if !ok {
				continue
			}
			entry, err := newEntry(module, arg.Name, loc.Location, arg.Type)
			if err != nil {
				return nil, err
			}
			iface.Entries = append(iface.Entries, entry)
			continue
		}

		st, ok := module.Types[arg.Type].Inner.(ir.StructType)
		if !ok {
			continue
		}
		for _, m := range st.Members {
			if m.Binding == nil {
				continue
			}
			loc, ok := (*m.Binding).(ir.LocationBinding)
			if !ok {
				continue
			}
			entry, err := newEntry(module, m.Name, loc.Location, m.Type)
			if err != nil {
				return nil, err
			}
			iface.Entries = append(iface.Entries, entry)
		}
	}

	sort.Slice(iface.Entries, func(i, j int) bool {
		return iface.Entries[i].Location < iface.Entries[j].Location
	})
	return iface, nil
}

func findVertexEntryPoint(module *ir.Module, name string) *ir.EntryPoint {
	for i := range module.EntryPoints {
		ep := &module.EntryPoints[i]
		if ep.Stage != ir.StageVertex {
			continue
		}
		if name == "" || ep.Name == name {
			return ep
		}
	}
	return nil
}

func newEntry(module *ir.Module, name string, location uint32, th ir.TypeHandle) (Entry, error) {
	entry := Entry{Name: name, Location: location, Locations: 1}

	var scalar ir.ScalarType
	switch t := module.Types[th].Inner.(type) {
	case ir.ScalarType:
		scalar = t
		entry.Components = 1
	case ir.VectorType:
		scalar = t.Scalar
		entry.Components = uint32(t.Size)
	default:
		return Entry{}, fmt.Errorf("%w: input %q at location %d", ErrUnsupportedInputType, name, location)
	}

	if scalar.Width != 4 {
		return Entry{}, fmt.Errorf("%w: input %q is %d bytes wide", ErrUnsupportedInputType, name, scalar.Width)
	}
	switch scalar.Kind {
	case ir.ScalarFloat:
		entry.Kind = KindFloat
	case ir.ScalarSint:
		entry.Kind = KindSint
	case ir.ScalarUint:
		entry.Kind = KindUint
	default:
		return Entry{}, fmt.Errorf("%w: input %q has non-numeric type", ErrUnsupportedInputType, name)
	}
	return entry, nil
}
