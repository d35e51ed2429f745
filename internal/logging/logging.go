// Package logging builds the process logger. The terminal belongs to the
// game screen, so log lines go to a file or nowhere.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// FileName is the log file created in the config directory
const FileName = "tetris.log"

const flags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger appending to FileName in dir when debug is set, and a
// logger discarding everything otherwise. The closer releases the file.
func New(debug bool, dir string) (*log.Logger, io.Closer, error) {
	if !debug {
		return log.New(io.Discard, "", flags), nopCloser{}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(file, "", flags), file, nil
}
