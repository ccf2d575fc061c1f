package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/heartmarshall/jmdict-prepare/internal/domain"
)

// Encode writes entries to w as one compact JSON array, gzip-compressed at
// the given level. Non-ASCII text is written literally.
func Encode(w io.Writer, entries []domain.Entry, level int) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Records(entries)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	// Encoder terminates every value with a newline.
	payload := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	zw, err := gzip.NewWriterLevel(w, level)
	if err != nil {
		return fmt.Errorf("gzip writer: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		zw.Close()
		return fmt.Errorf("gzip write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("gzip close: %w", err)
	}
	return nil
}

// WriteFile encodes entries into path. The artifact is written to a temporary
// file in the same directory and renamed into place only when complete, so a
// failed write never leaves a partial file at path. It returns the size of the
// compressed artifact.
func WriteFile(path string, entries []domain.Entry, level int) (n int64, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	cw := &countingWriter{w: tmp}
	if err = Encode(cw, entries, level); err != nil {
		return 0, err
	}
	if err = tmp.Sync(); err != nil {
		return 0, fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return 0, fmt.Errorf("rename to %s: %w", path, err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
