// Package archive builds in-memory zip and gzip artifacts. Output is
// deterministic: identical input always produces identical bytes, so entry
// timestamps are pinned rather than taken from the clock.
package archive

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"time"
)

// Entry is one file to place inside a zip archive.
type Entry struct {
	Name string
	Data []byte
}

// zipEpoch pins entry modification times (MS-DOS epoch).
var zipEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// BuildZip assembles a DEFLATE-compressed zip archive from the given entries.
func BuildZip(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		hdr := &zip.FileHeader{
			Name:     e.Name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("create zip entry %q: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			zw.Close()
			return nil, fmt.Errorf("write zip entry %q: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip: %w", err)
	}
	return buf.Bytes(), nil
}

// GzipBytes compresses data with gzip at maximum compression. The header
// carries no mod time.
func GzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("gzip init: %w", err)
	}
	if _, err := gw.Write(data); err != nil {
		gw.Close()
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := gw.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}
