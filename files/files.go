// Package files writes session transcripts.
package files

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Write replaces the file at path with everything read from r.
func Write(path string, r io.Reader) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return errors.Wrapf(err, "open %v", path)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := io.Copy(w, r); err != nil {
		return errors.Wrapf(err, "write %v", path)
	}
	return errors.Wrapf(w.Flush(), "flush %v", path)
}

// ReadLines returns the lines of the file at path.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %v", path)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, errors.Wrapf(scanner.Err(), "read %v", path)
}
