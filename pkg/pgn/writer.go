package pgn

import (
	"fmt"
	"os"
	"sync"
)

// FileWriter appends whole PGN records to a transcript file. Writes from concurrent games
// are serialized so records never interleave.
type FileWriter struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileWriter opens (or creates) the transcript file for appending.
func NewFileWriter(filename string) (*FileWriter, error) {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("pgn: open %v: %w", filename, err)
	}
	return &FileWriter{file: f}, nil
}

// Write appends one record atomically with respect to other Write calls.
func (w *FileWriter) Write(record string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.WriteString(record); err != nil {
		return fmt.Errorf("pgn: write: %w", err)
	}
	return nil
}

// Close flushes and closes the transcript file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}
