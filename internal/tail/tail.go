// Package tail reads the trailing window of a log file with bounded cost.
package tail

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Lines reads at most window bytes from the end of the file at path and
// returns complete text lines, oldest first. fileSize is the size
// reported by a prior stat; memory and I/O cost are bounded by window
// regardless of total file size.
//
// When the read does not start at byte 0 the first recovered line may be
// a byte-level fragment of a longer line and is dropped unconditionally.
// Invalid UTF-8 sequences are replaced, never fatal.
func Lines(path string, fileSize, window int64) ([]string, error) {
	readSize := min(window, fileSize)
	if readSize <= 0 {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open session file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if _, err := f.Seek(fileSize-readSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek tail: %w", err)
	}

	data := make([]byte, readSize)
	n, err := io.ReadFull(f, data)
	if n == 0 {
		if err != nil {
			return nil, fmt.Errorf("read tail: %w", err)
		}
		return nil, nil
	}

	lines := splitLines(data[:n])
	if fileSize > readSize && len(lines) > 0 {
		lines = lines[1:]
	}
	return lines, nil
}

func splitLines(data []byte) []string {
	text := strings.ToValidUTF8(string(data), string(utf8.RuneError))
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
