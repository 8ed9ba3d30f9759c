package sink

import (
	"os"
	"sync"

	"github.com/reglet-dev/ketchlist/internal/application/ports"
)

// MemorySink keeps lines in memory. It can be told to fail after a
// number of writes, which makes it useful for exercising error paths.
type MemorySink struct {
	mu      sync.Mutex
	lines   []string
	written int64
	closed  bool

	// FailAfter makes WriteLine return FailErr once this many lines have
	// been written (0 = never fail)
	FailAfter int
	FailErr   error
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// WriteLine appends line.
func (s *MemorySink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return os.ErrClosed
	}
	if s.FailAfter > 0 && len(s.lines) >= s.FailAfter {
		return s.FailErr
	}
	s.lines = append(s.lines, line)
	s.written += int64(len(line)) + 1
	return nil
}

// BytesWritten returns the size the lines would occupy on disk.
func (s *MemorySink) BytesWritten() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written
}

// Close marks the sink closed.
func (s *MemorySink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Lines returns a copy of the lines written so far.
func (s *MemorySink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Closed reports whether Close was called.
func (s *MemorySink) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// MemorySinkFactory hands out a single MemorySink, or an error.
type MemorySinkFactory struct {
	Sink      *MemorySink
	CreateErr error
	Paths     []string
}

// NewMemorySinkFactory creates a factory around a fresh MemorySink.
func NewMemorySinkFactory() *MemorySinkFactory {
	return &MemorySinkFactory{Sink: NewMemorySink()}
}

// Create implements ports.SinkFactory.
func (f *MemorySinkFactory) Create(path string) (ports.WordlistSink, error) {
	f.Paths = append(f.Paths, path)
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return f.Sink, nil
}
