package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/jmdict-prepare/internal/app/converter"
	"github.com/heartmarshall/jmdict-prepare/internal/config"
	"github.com/heartmarshall/jmdict-prepare/internal/domain"
)

// Version and Commit are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/jmdict-prepare/internal/app.Version=1.0.0"
var (
	Version = "dev"
	Commit  = "unknown"
)

const usage = "usage: prepare-dict <input path> <output path>\n"

// Run is the command entry point. args are the positional arguments without
// the program name; diagnostics go to stderr. It returns the process exit
// code: 0 on success, 1 on any failure.
func Run(ctx context.Context, args []string, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	logger := NewLogger(cfg.Log, stderr)
	logger.Info("starting prepare-dict",
		slog.String("version", Version),
		slog.String("commit", Commit),
	)

	if _, err := converter.New(logger, cfg.Convert).Run(ctx, args[0], args[1]); err != nil {
		attrs := []any{slog.String("error", err.Error())}
		var entryErr *domain.EntryError
		if errors.As(err, &entryErr) {
			attrs = append(attrs, slog.Int("entry_index", entryErr.Index))
			if entryErr.Seq != "" {
				attrs = append(attrs, slog.String("ent_seq", entryErr.Seq))
			}
		}
		logger.Error("conversion failed", attrs...)
		return 1
	}

	return 0
}
