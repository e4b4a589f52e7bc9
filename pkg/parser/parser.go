package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// FileSource implements RecordSource for reading from log files.
// Files are read in the order supplied, lines in file order, so the
// record stream is deterministic for the same inputs.
type FileSource struct {
	files  []string
	parser *LineParser

	currentFile    *os.File
	currentScanner *bufio.Scanner
	currentSource  string
	currentLine    int
	fileIndex      int
	skipped        int
}

// NewFileSource creates a RecordSource that reads from the given files.
func NewFileSource(files []string, lp *LineParser) *FileSource {
	return &FileSource{
		files:     files,
		parser:    lp,
		fileIndex: -1,
	}
}

// Next returns the next parsed record.
// Blank lines are skipped silently; malformed lines are skipped, tallied,
// and logged at debug level. A file that cannot be opened or read is a
// fatal error naming the path.
// Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Record, error) {
	for {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Ensure we have a file open
		if s.currentScanner == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		// Try to read the next line
		if s.currentScanner.Scan() {
			s.currentLine++
			line := s.currentScanner.Text()

			// Blank lines are not parse failures
			if strings.TrimSpace(line) == "" {
				continue
			}

			rec, err := s.parser.Parse(line)
			if err != nil {
				s.skipped++
				logrus.WithFields(logrus.Fields{
					"file": s.currentSource,
					"line": s.currentLine,
				}).Debugf("skipping malformed line: %v", err)
				continue
			}

			rec.Source = s.currentSource
			rec.LineNum = s.currentLine
			return rec, nil
		}

		// Check for scanner error
		if err := s.currentScanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.currentSource, err)
		}

		// Current file exhausted, try next
		if err := s.closeCurrentFile(); err != nil {
			return nil, err
		}
		s.currentScanner = nil
	}
}

// Skipped returns the number of malformed lines skipped so far.
func (s *FileSource) Skipped() int {
	return s.skipped
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}

	s.currentFile = f
	s.currentScanner = bufio.NewScanner(f)
	s.currentScanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	s.currentSource = path
	s.currentLine = 0

	return nil
}

func (s *FileSource) closeCurrentFile() error {
	if s.currentFile != nil {
		err := s.currentFile.Close()
		s.currentFile = nil
		s.currentScanner = nil
		return err
	}
	return nil
}
