package phh

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/stanleykosi/arcium-aces/internal/fileutil"
)

// Writer accumulates hands for one .phhs file. Hands become numbered
// sections in record order; Flush rewrites the whole file in one atomic
// step, so a crash mid-run never leaves a torn section behind.
type Writer struct {
	path string

	mu    sync.Mutex
	hands []*Hand
}

// NewWriter returns a Writer targeting path, creating parent directories as
// needed. Nothing is written until Flush.
func NewWriter(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return &Writer{path: path}, nil
}

// Record appends one hand. Safe for concurrent use.
func (w *Writer) Record(hand *Hand) error {
	if hand == nil {
		return fmt.Errorf("phh: nil hand")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hands = append(w.hands, hand)
	return nil
}

// Len reports how many hands have been recorded.
func (w *Writer) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.hands)
}

// Flush writes all recorded hands to the target file. Flushing an empty
// Writer writes nothing and leaves any existing file alone.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.hands) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for i, hand := range w.hands {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "[%d]\n", i+1)
		if err := Encode(&buf, hand); err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
	}
	return fileutil.WriteFileAtomic(w.path, buf.Bytes(), 0o644)
}
