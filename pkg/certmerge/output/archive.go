// Package output holds the sinks of the pipeline: the downloadable
// archive, the native page renderer and the external converter.
package output

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Archive accumulates named documents into an in-memory zip with
// per-entry deflate compression. It does not deduplicate names; the
// producing loop is responsible for uniqueness.
type Archive struct {
	buf     bytes.Buffer
	zw      *zip.Writer
	entries []string
}

// NewArchive returns an empty archive ready for Add calls.
func NewArchive() *Archive {
	a := &Archive{}
	a.zw = zip.NewWriter(&a.buf)
	return a
}

// Add appends one entry.
func (a *Archive) Add(name string, data []byte) error {
	w, err := a.zw.Create(name)
	if err != nil {
		return fmt.Errorf("add archive entry %q: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("add archive entry %q: %w", name, err)
	}
	a.entries = append(a.entries, name)
	return nil
}

// Entries returns the entry names added so far, in order.
func (a *Archive) Entries() []string {
	return a.entries
}

// Len returns the number of entries added so far.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Close finalizes the zip and returns its bytes. The archive must not
// be used after Close.
func (a *Archive) Close() ([]byte, error) {
	if err := a.zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return a.buf.Bytes(), nil
}
