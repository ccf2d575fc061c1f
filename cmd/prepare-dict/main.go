// Command prepare-dict converts a JMdict XML release into a gzip-compressed
// JSON array of entries.
//
// Usage:
//
//	prepare-dict <input path> <output path>
//
// Input ending in .gz is decompressed on the fly. Tuning is read from the
// environment (CONVERT_WORKERS, CONVERT_GZIP_LEVEL, CONVERT_NORMALIZE_NFC,
// LOG_LEVEL, LOG_FORMAT) or from the YAML file named by CONFIG_PATH.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/jmdict-prepare/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}
