// Package converter runs one JMdict conversion: read the XML release, build
// validated entries and write the gzip JSON artifact.
package converter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/heartmarshall/jmdict-prepare/internal/config"
	"github.com/heartmarshall/jmdict-prepare/internal/domain"
	"github.com/heartmarshall/jmdict-prepare/internal/export"
	"github.com/heartmarshall/jmdict-prepare/internal/jmdict"
	"github.com/heartmarshall/jmdict-prepare/internal/xmltree"
	"github.com/heartmarshall/jmdict-prepare/pkg/ctxutil"
)

// Result holds the outcome of a successful run.
type Result struct {
	RunID       uuid.UUID
	Stats       jmdict.Stats
	OutputBytes int64
	Duration    time.Duration
}

// Converter turns a JMdict XML file into the exported artifact.
type Converter struct {
	log     *slog.Logger
	cfg     config.ConvertConfig
	builder *jmdict.Builder
}

// New creates a Converter.
func New(log *slog.Logger, cfg config.ConvertConfig) *Converter {
	return &Converter{
		log: log,
		cfg: cfg,
		builder: jmdict.NewBuilder(jmdict.Options{
			Workers:      cfg.Workers,
			NormalizeNFC: cfg.NormalizeNFC,
		}),
	}
}

// Run converts input into output. Nothing is written to output unless the
// whole dictionary builds; build failures carry a *domain.EntryError.
func (c *Converter) Run(ctx context.Context, input, output string) (Result, error) {
	start := time.Now()
	res := Result{RunID: uuid.New()}
	ctx = ctxutil.WithRunID(ctx, res.RunID)

	c.log.InfoContext(ctx, "conversion started",
		slog.String("input", input),
		slog.String("output", output),
		slog.Int("workers", c.cfg.Workers),
	)

	var src []byte
	if err := c.phase(ctx, "read", func() error {
		var err error
		src, err = readInput(input)
		if err == nil {
			c.log.DebugContext(ctx, "input loaded", slog.Int("bytes", len(src)))
		}
		return err
	}); err != nil {
		return Result{}, fmt.Errorf("read %s: %w", input, err)
	}

	var root *xmltree.Node
	if err := c.phase(ctx, "parse", func() error {
		var err error
		root, err = xmltree.Parse(src)
		return err
	}); err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", input, err)
	}
	// Release the raw document before building.
	src = nil

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var entries []domain.Entry
	if err := c.phase(ctx, "build", func() error {
		var err error
		entries, err = c.builder.Dictionary(ctx, root)
		return err
	}); err != nil {
		return Result{}, fmt.Errorf("build: %w", err)
	}
	res.Stats = jmdict.Summarize(entries)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := c.phase(ctx, "export", func() error {
		var err error
		res.OutputBytes, err = export.WriteFile(output, entries, c.cfg.GzipLevel)
		return err
	}); err != nil {
		return Result{}, fmt.Errorf("export %s: %w", output, err)
	}

	res.Duration = time.Since(start)
	c.log.InfoContext(ctx, "conversion completed",
		slog.Int("entries", res.Stats.Entries),
		slog.Int("forms", res.Stats.Forms),
		slog.Int("readings", res.Stats.Readings),
		slog.Int("senses", res.Stats.Senses),
		slog.Int("glosses", res.Stats.Glosses),
		slog.Int64("output_bytes", res.OutputBytes),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// phase runs fn and logs its duration.
func (c *Converter) phase(ctx context.Context, name string, fn func() error) error {
	start := time.Now()
	c.log.DebugContext(ctx, "starting phase", slog.String("phase", name))

	if err := fn(); err != nil {
		return err
	}

	c.log.InfoContext(ctx, "phase completed",
		slog.String("phase", name),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// readInput returns the contents of path, decompressing .gz files.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	return io.ReadAll(r)
}
