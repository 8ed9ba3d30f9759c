// Package sink provides wordlist destinations.
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reglet-dev/ketchlist/internal/application/ports"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
	bufSize  = 64 * 1024
)

// FileSink writes newline-delimited lines to a file through a buffer.
type FileSink struct {
	file    *os.File
	writer  *bufio.Writer
	written int64
	closed  bool
}

// NewFileSink creates path, and any missing parent directories, and
// truncates it if it already exists.
func NewFileSink(path string) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &FileSink{
		file:   file,
		writer: bufio.NewWriterSize(file, bufSize),
	}, nil
}

// WriteLine writes line followed by a newline.
func (s *FileSink) WriteLine(line string) error {
	if s.closed {
		return os.ErrClosed
	}
	n, err := s.writer.WriteString(line)
	s.written += int64(n)
	if err != nil {
		return err
	}
	if err := s.writer.WriteByte('\n'); err != nil {
		return err
	}
	s.written++
	return nil
}

// BytesWritten returns the number of bytes accepted so far, including
// bytes still buffered.
func (s *FileSink) BytesWritten() int64 {
	return s.written
}

// Close flushes buffered lines and closes the file. The file is closed
// even when the flush fails.
func (s *FileSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.writer.Flush()
	closeErr := s.file.Close()
	return errors.Join(flushErr, closeErr)
}

// FileSinkFactory opens FileSinks.
type FileSinkFactory struct{}

// NewFileSinkFactory creates a new file sink factory.
func NewFileSinkFactory() *FileSinkFactory {
	return &FileSinkFactory{}
}

// Create implements ports.SinkFactory.
func (f *FileSinkFactory) Create(path string) (ports.WordlistSink, error) {
	return NewFileSink(path)
}
