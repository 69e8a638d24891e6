package src

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// ReadWords reads a dictionary file with one word per line, uppercased
// with surrounding whitespace stripped. Blank lines are skipped. A path
// ending in .gz is decompressed transparently.
func ReadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}

	var words []string

	s := bufio.NewScanner(r)
	for s.Scan() {
		w := strings.ToUpper(strings.TrimSpace(s.Text()))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
