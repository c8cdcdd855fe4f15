package fsops

import (
	"bytes"
	"os"

	"github.com/fsops-project/fsops/pkg/fserr"
)

// ReadMode selects text or binary semantics for whole-file reads.
type ReadMode int

const (
	// ModeText translates CRLF line endings to LF, matching text-mode
	// reads on platforms that use CRLF natively.
	ModeText ReadMode = iota
	// ModeBinary returns file bytes untouched.
	ModeBinary
)

// ReadLines fully reads path and splits it into lines with terminators
// retained. The final line is returned even without a terminator.
func ReadLines(path string, mode ReadMode) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fserr.Classify(path, err)
	}
	if mode == ModeText {
		data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	}

	var lines []string
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, string(data))
			break
		}
		lines = append(lines, string(data[:i+1]))
		data = data[i+1:]
	}
	return lines, nil
}

// ReadContents fully reads path in text mode and returns the content as
// one string.
func ReadContents(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fserr.Classify(path, err)
	}
	return string(bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))), nil
}
