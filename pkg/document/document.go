// Package document reads source texts and writes rendered pages. The
// pipeline itself never touches the filesystem; this package is the only
// place file IO happens.
package document

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"

	"github.com/Lehman3D/Tag-Cloud-Generator/internal/utils"
)

// maxLineBytes bounds a single source line; prose files never get close.
const maxLineBytes = 4 << 20

// Document is a source text ready for the pipeline. Title is the base name
// of the file it was read from.
type Document struct {
	Title string
	Text  string
}

// ReadOption adjusts how a source file is read.
type ReadOption func(*readOptions)

type readOptions struct {
	progress bool
}

// WithProgress draws a progress bar while the file is read. Useful for the
// CLI on large inputs, pointless for the IPC server.
func WithProgress() ReadOption {
	return func(o *readOptions) { o.progress = true }
}

// Read loads the file at path into a Document. Lines are joined with single
// newlines, so the final text round-trips through the tokenizer the same way
// regardless of the platform's line endings.
func Read(path string, opts ...ReadOption) (Document, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to stat source file: %w", err)
	}
	file, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open source file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	var bar *pb.ProgressBar
	if o.progress {
		bar = pb.Full.Start64(info.Size())
		reader = bar.NewProxyReader(file)
	}

	var b strings.Builder
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	first := true
	for scanner.Scan() {
		if !first {
			b.WriteByte('\n')
		}
		b.WriteString(scanner.Text())
		first = false
	}
	if bar != nil {
		bar.Finish()
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("failed to read source file: %w", err)
	}

	doc := Document{Title: filepath.Base(path), Text: b.String()}
	log.Debugf("read %s: %d bytes", doc.Title, len(doc.Text))
	return doc, nil
}

// WriteHTML writes markup into dir/name, creating dir if needed, and returns
// the path written. An empty dir means the current directory.
func WriteHTML(dir, name, markup string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("failed to create output folder %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		return "", fmt.Errorf("failed to write page: %w", err)
	}
	log.Debugf("wrote %d bytes to %s", len(markup), path)
	return path, nil
}
