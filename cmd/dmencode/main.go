// Command dmencode encodes text as a Data Matrix (ECC200) symbol.
//
// Run "dmencode encode <text>" to print or save a symbol, or "dmencode sizes"
// to list the symbol sizes. Flags may also be set through DMENCODE_*
// environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/datamatrix"
	"github.com/ericlevine/ecc200/datamatrix/encoder"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand(os.Stdout).ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "dmencode: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer) *ffcli.Command {
	return &ffcli.Command{
		ShortUsage: "dmencode <encode|sizes> [flags]",
		ShortHelp:  "Data Matrix (ECC200) encoder",
		FlagSet:    flag.NewFlagSet("dmencode", flag.ContinueOnError),
		Exec: func(ctx context.Context, args []string) error {
			return flag.ErrHelp
		},
		Subcommands: []*ffcli.Command{
			newEncodeCommand(stdout),
			newSizesCommand(stdout),
		},
	}
}

var encodeArgs struct {
	output  string
	shape   string
	size    string
	charset string
	scale   int
	margin  int
	verbose bool
	metrics bool
}

func newEncodeCommand(stdout io.Writer) *ffcli.Command {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.StringVar(&encodeArgs.output, "o", "", "write a PNG to this file instead of printing the symbol")
	fs.StringVar(&encodeArgs.shape, "shape", "any", "symbol shape: any, square or rectangle")
	fs.StringVar(&encodeArgs.size, "size", "", "force a symbol size given as HxW, e.g. 16x48")
	fs.StringVar(&encodeArgs.charset, "charset", "", "character set announced by ECI (default ISO-8859-1, no ECI)")
	fs.IntVar(&encodeArgs.scale, "scale", 4, "pixels per module in PNG output")
	fs.IntVar(&encodeArgs.margin, "margin", datamatrix.DefaultQuietZoneSize, "quiet zone in modules")
	fs.BoolVar(&encodeArgs.verbose, "v", false, "verbose logging")
	fs.BoolVar(&encodeArgs.metrics, "metrics", false, "print placement cache counters to stderr")
	return &ffcli.Command{
		Name:       "encode",
		ShortUsage: "dmencode encode [flags] <text>",
		ShortHelp:  "Encode text as a Data Matrix symbol",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("DMENCODE")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}
			return runEncode(stdout, args[0])
		},
	}
}

func newSizesCommand(stdout io.Writer) *ffcli.Command {
	return &ffcli.Command{
		Name:       "sizes",
		ShortUsage: "dmencode sizes",
		ShortHelp:  "List the Data Matrix symbol sizes",
		FlagSet:    flag.NewFlagSet("sizes", flag.ContinueOnError),
		Exec: func(ctx context.Context, args []string) error {
			return printSizes(stdout)
		},
	}
}

func runEncode(stdout io.Writer, text string) error {
	logger := zap.NewNop()
	if encodeArgs.verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer logger.Sync()
	log := logger.Sugar()

	opts, err := encodeOptions()
	if err != nil {
		return err
	}
	cache := encoder.NewPlacementCache(encoder.WithLogf(log.Infof))
	w := datamatrix.NewWriterWithCache(cache)
	matrix, err := w.Encode(text, 0, 0, opts)
	if err != nil {
		return err
	}
	log.Infow("encoded", "modules", fmt.Sprintf("%dx%d", matrix.Height(), matrix.Width()), "margin", encodeArgs.margin)

	if encodeArgs.output == "" {
		fmt.Fprint(stdout, matrix.String())
	} else {
		if encodeArgs.scale < 1 {
			return fmt.Errorf("scale %d: %w", encodeArgs.scale, ecc200.ErrInvalidDimensions)
		}
		scaled, err := w.Encode(text, matrix.Width()*encodeArgs.scale, matrix.Height()*encodeArgs.scale, opts)
		if err != nil {
			return err
		}
		if err := writePNG(encodeArgs.output, scaled); err != nil {
			return err
		}
	}
	if encodeArgs.metrics {
		return printMetrics(os.Stderr)
	}
	return nil
}

func encodeOptions() (*ecc200.EncodeOptions, error) {
	opts := &ecc200.EncodeOptions{CharacterSet: encodeArgs.charset}
	switch strings.ToLower(encodeArgs.shape) {
	case "any", "":
	case "square":
		opts.Shape = ecc200.ShapeSquare
	case "rectangle", "rect":
		opts.Shape = ecc200.ShapeRectangle
	default:
		return nil, fmt.Errorf("unknown shape %q", encodeArgs.shape)
	}
	if encodeArgs.size != "" {
		if _, err := fmt.Sscanf(encodeArgs.size, "%dx%d", &opts.Height, &opts.Width); err != nil {
			return nil, fmt.Errorf("invalid size %q: want HxW", encodeArgs.size)
		}
	}
	margin := encodeArgs.margin
	opts.Margin = &margin
	return opts, nil
}

func writePNG(path string, m *bitutil.BitMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, datamatrix.NewImage(m)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSizes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tSHAPE\tREGIONS\tDATA\tBLOCKS\tECC/BLOCK\tTOTAL")
	for _, si := range encoder.Symbols() {
		shape := ecc200.ShapeSquare
		if si.Rectangular() {
			shape = ecc200.ShapeRectangle
		}
		fmt.Fprintf(tw, "%v\t%v\t%dx%d\t%d\t%d\t%d\t%d\n", &si, shape,
			si.VerticalRegions(), si.HorizontalRegions(),
			si.DataCapacity, si.BlockCount(), si.ECCBlockSize, si.TotalCodewords())
	}
	return tw.Flush()
}

// printMetrics writes the library's metric families in the Prometheus text
// format.
func printMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "ecc200_") {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding metric %s: %w", mf.GetName(), err)
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		return closer.Close()
	}
	return nil
}
