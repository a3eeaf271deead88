package pre

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadLines splits the contents of r into lines. Line terminators ("\n" or
// "\r\n") are removed; leading whitespace is kept verbatim. A final line
// without a terminator is still returned.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrapf(err, "read line %d", len(lines)+1)
		}
		if err == io.EOF && line == "" {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)

		if err == io.EOF {
			break
		}
	}

	return lines, nil
}

// ReadFile reads the file at path and splits it into lines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open source file")
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return lines, nil
}
