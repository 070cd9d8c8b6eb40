// Command rowgen generates row paths for a field boundary from the
// command line. It reads a GeoJSON FeatureCollection containing one
// polygon and one two-point baseline, runs the generation engine, and
// writes the resulting FeatureCollection to stdout or a file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	geocodec "github.com/fieldrows/rowgen/internal/adapters/geojson"
	"github.com/fieldrows/rowgen/internal/core/domain"
	"github.com/fieldrows/rowgen/internal/core/engine"
)

func main() {
	var (
		inPath      = flag.String("in", "", "input GeoJSON file (defaults to stdin)")
		outPath     = flag.String("out", "", "output GeoJSON file (defaults to stdout)")
		spacing     = flag.Float64("spacing", 6.0, "row spacing in meters")
		startLetter = flag.String("letter", "F", "first letter of the row name sequence")
		startNumber = flag.Int("number", 1, "first number of the row name sequence")
		style       = flag.String("style", domain.NumberingZeroPadded, "numbering style: zero-padded or unpadded")
		destSide    = flag.String("dest", "A", "destination side: A, B or none")
		epsg        = flag.Int("epsg", 0, "projection EPSG override (0 = auto UTM zone)")
		descending  = flag.Bool("descending", false, "name rows from the far side of the baseline")
		cycle       = flag.Bool("cycle", false, "advance the letter instead of the number between rows")
		dualZone    = flag.Bool("dual-zone", false, "emit paired names like F01/F02")
		pretty      = flag.Bool("pretty", false, "indent the output JSON")
	)
	flag.Parse()

	data, err := readInput(*inPath)
	if err != nil {
		fatal("read input: %v", err)
	}

	area, baseline, err := geocodec.DecodeInput(data)
	if err != nil {
		fatal("%v", err)
	}

	cfg := domain.RowConfig{
		SpacingMeters:   *spacing,
		StartLetter:     strings.ToUpper(*startLetter),
		StartNumber:     *startNumber,
		NumberingStyle:  *style,
		DestinationSide: domain.Side(*destSide),
		EPSG:            *epsg,
		Descending:      *descending,
		CycleLetters:    *cycle,
		DualZone:        *dualZone,
	}

	rs, err := engine.Generate(area, baseline, cfg, time.Now().UTC())
	if err != nil {
		fatal("%v", err)
	}

	fc := geocodec.Encode(rs)
	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(fc, "", "  ")
	} else {
		out, err = json.Marshal(fc)
	}
	if err != nil {
		fatal("encode output: %v", err)
	}
	out = append(out, '\n')

	if *outPath == "" {
		_, err = os.Stdout.Write(out)
	} else {
		err = os.WriteFile(*outPath, out, 0o644)
	}
	if err != nil {
		fatal("write output: %v", err)
	}

	fmt.Fprintf(os.Stderr, "generated %d rows (baseline %.1f m, spacing %.1f m)\n",
		rs.Meta.RowCount, rs.Meta.BaselineLengthM, rs.Meta.SpacingMeters)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "rowgen: "+format+"\n", args...)
	os.Exit(1)
}
