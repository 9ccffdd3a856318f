package splitter

import (
	"bufio"
	"io"
)

// splitLines reads the stream line by line and calls emit once per chunk
// boundary: up to chunkSize data lines plus the header, the final chunk
// holding the remainder. The stream is consumed in a single pass, only one
// chunk is held in memory at a time. A stream with no data lines emits
// nothing.
func splitLines(r io.Reader, chunkSize int, emit func(chunkNumber int, header string, lines []string) error) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		header     string
		headerSeen bool
		lines      = make([]string, 0, chunkSize)
		chunkCount int
	)
	for scanner.Scan() {
		line := scanner.Text()
		if !headerSeen {
			header = line
			headerSeen = true
			continue
		}
		lines = append(lines, line)
		if len(lines) >= chunkSize {
			if err := emit(chunkCount, header, lines); err != nil {
				return chunkCount, err
			}
			chunkCount++
			lines = make([]string, 0, chunkSize)
		}
	}
	if err := scanner.Err(); err != nil {
		// abort without dispatching the partially built chunk
		return chunkCount, err
	}
	if len(lines) > 0 {
		if err := emit(chunkCount, header, lines); err != nil {
			return chunkCount, err
		}
		chunkCount++
	}
	return chunkCount, nil
}
