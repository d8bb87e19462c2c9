// Command vweave interleaves raw vertex attribute files into one vertex
// buffer.
//
// Usage:
//
//	vweave [-o out.vbuf] [-v] mesh.yaml
//
// The manifest lists the attribute files in record order. When it names a
// WGSL shader, the layout is checked against the shader's vertex inputs
// before the buffer is written.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vertex"
	"github.com/gogpu/vertex/internal/manifest"
	"github.com/gogpu/vertex/shader"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "vweave:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("vweave", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		output  = fs.String("o", "", "output file (overrides the manifest)")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one manifest")
	}

	logger := newLogger(stderr, *verbose)
	vertex.SetLogger(logger)
	defer vertex.SetLogger(nil)

	m, err := manifest.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	b, err := m.Builder()
	if err != nil {
		return err
	}
	info, it, err := b.Build()
	if err != nil {
		return err
	}

	var layout *gputypes.VertexBufferLayout
	if m.Shader != "" {
		src, err := os.ReadFile(m.Resolve(m.Shader))
		if err != nil {
			return fmt.Errorf("read shader: %w", err)
		}
		iface, err := shader.ReflectWGSL(string(src), m.EntryPoint)
		if err != nil {
			return err
		}
		l, err := info.Definition(iface)
		if err != nil {
			return err
		}
		layout = &l
	}

	// -o is relative to the working directory, output: to the manifest.
	outPath := *output
	if outPath == "" {
		outPath = m.Resolve(m.Output)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	n, err := it.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	logger.Info("buffer written", "path", outPath, "bytes", n, "stride", info.Stride)

	printLayout(stdout, info, layout)
	return nil
}

// newLogger returns a slog logger backed by charmbracelet/log.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	h := log.NewWithOptions(w, log.Options{
		Prefix: "vweave",
		Level:  log.InfoLevel,
	})
	if verbose {
		h.SetLevel(log.DebugLevel)
	}
	return slog.New(h)
}

func printLayout(w io.Writer, info *vertex.VertexBufferInfo, layout *gputypes.VertexBufferLayout) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "stride\t%d\n", info.Stride)
	fmt.Fprintf(tw, "step\t%v\n", info.StepMode)
	fmt.Fprintln(tw, "NAME\tOFFSET\tFORMAT\tELEMENTS")
	for _, name := range info.Names() {
		m := info.Members[name]
		fmt.Fprintf(tw, "%s\t%d\t%v\t%d\n", name, m.Offset, m.Format, m.NumElements)
	}
	if layout != nil {
		fmt.Fprintln(tw, "LOCATION\tOFFSET\tFORMAT\t")
		for _, a := range layout.Attributes {
			fmt.Fprintf(tw, "%d\t%d\t%v\t\n", a.ShaderLocation, a.Offset, a.Format)
		}
	}
	_ = tw.Flush()
}
