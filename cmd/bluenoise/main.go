package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"dithermap/pkg/bluenoise"
	"dithermap/pkg/core"
)

type cutList []int

func (l *cutList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

func (l *cutList) Set(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil || v <= 0 {
		return fmt.Errorf("cut must be a positive integer, got %q", value)
	}
	*l = append(*l, v)
	return nil
}

func main() {
	size := flag.Int("size", 64, "threshold map side length")
	seed := flag.Int64("seed", 42, "seed for the first placed point")
	out := flag.String("out", "", "output path (\"-\" for stdout, empty to skip writing)")
	format := flag.String("format", "png", "output format: png, text or raw")
	scale := flag.Int("scale", 1, "pixel scale for png output")
	compare := flag.Bool("compare", false, "also report spacing of a white-noise map with the same seed")
	verbose := flag.Bool("v", false, "enable debug logging")
	var cuts cutList
	flag.Var(&cuts, "cut", "threshold cut to report spacing for (repeatable, default size*size/4)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	bluenoise.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	start := time.Now()
	grid, err := bluenoise.Generate(*size, *seed)
	if errors.Is(err, bluenoise.ErrInvalidSize) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
	bluenoise.Logger().Debug("generated threshold map", "size", *size, "seed", *seed, "elapsed", time.Since(start))

	if len(cuts) == 0 {
		cuts = cutList{max((*size)*(*size)/4, 1)}
	}

	var white *core.RankGrid
	if *compare {
		if white, err = bluenoise.WhiteNoise(*size, *seed); err != nil {
			log.Fatal(err)
		}
	}

	report := os.Stdout
	if *out == "-" {
		report = os.Stderr
	}
	for _, c := range cuts {
		printStats(report, "blue ", bluenoise.Analyze(grid, *seed, c))
		if white != nil {
			printStats(report, "white", bluenoise.Analyze(white, *seed, c))
		}
	}

	if *out == "" {
		return
	}
	if err := writeGrid(*out, *format, *scale, grid); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}

func printStats(w io.Writer, label string, s bluenoise.Stats) {
	fmt.Fprintf(w, "%s size=%d seed=%d cut=%d points=%d minSpacing=%.3f expected=%.3f ratio=%.3f\n",
		label, s.Size, s.Seed, s.Cut, s.Points, s.MinSpacing, s.Expected, s.Ratio)
}

func writeGrid(path, format string, scale int, g *core.RankGrid) (err error) {
	var encode func(io.Writer) error
	switch format {
	case "png":
		encode = func(w io.Writer) error { return bluenoise.WritePNG(w, g, scale) }
	case "text":
		encode = func(w io.Writer) error { return bluenoise.WriteText(w, g) }
	case "raw":
		encode = func(w io.Writer) error {
			_, werr := w.Write(bluenoise.Levels(g))
			return werr
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if path == "-" {
		return encode(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f)
}
