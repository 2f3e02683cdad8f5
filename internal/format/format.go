// Package format provides file and directory formatting for JSON documents
// rendered through the scribe document algebra.
package format

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/inkwell-go/scribe"
	"github.com/inkwell-go/scribe/ansi"
)

// Decoder turns raw JSON input into a document to render.
type Decoder func(r io.Reader) (scribe.Document[ansi.Style], error)

// Reader formats JSON from r, decoded by decode, and writes the result to w.
func Reader(r io.Reader, w io.Writer, decode Decoder, opts scribe.LayoutOptions) error {
	doc, err := decode(r)
	if err != nil {
		return fmt.Errorf("error decoding input: %v", err)
	}
	out := ansi.NewRenderer(w)
	return scribe.Render(context.Background(), doc, out, opts)
}

// Dir formats every .json file in a directory tree in place.
func Dir(root string, decode Decoder, opts scribe.LayoutOptions) error {
	var errs []error
	if err := fs.WalkDir(os.DirFS(root), ".", func(path string, d fs.DirEntry, fsErr error) error {
		if fsErr != nil {
			return fsErr
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(d.Name()) != ".json" {
			return nil
		}

		file := filepath.Join(root, path)
		if err := File(file, decode, opts); err != nil {
			errs = append(errs, err)
		}
		return nil
	}); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// File formats a single JSON file in place, writing through a temp file and
// renaming atomically so a failed format never leaves a truncated file.
func File(path string, decode Decoder, opts scribe.LayoutOptions) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %v", err)
	}
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading file: %v", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for atomic rename: %v", err)
	}

	var success bool
	tmpPath := tmp.Name()
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if perm := fi.Mode().Perm(); perm != 0o600 {
		if err := tmp.Chmod(perm); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("failed to set file mode: %v", err)
		}
	}

	if err := Reader(src, tmp, decode, opts); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %v", path, err)
	}
	if _, err := tmp.WriteString("\n"); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %v", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %v", err)
	}

	success = true
	return nil
}
