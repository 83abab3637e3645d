package envrc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Marker identifies the lines set-env rewrites. Matching is a plain
// substring test over each line.
const Marker = "export ENV"

// LineReader yields delimiter-terminated chunks from r, delimiter
// included. The final chunk may lack the delimiter when the input does
// not end with one.
type LineReader struct {
	delim byte
	r     *bufio.Reader
}

func NewLineReader(r io.Reader, delim byte) *LineReader {
	return &LineReader{delim: delim, r: bufio.NewReader(r)}
}

// Next returns the next chunk, or io.EOF once the input is exhausted.
func (l *LineReader) Next() ([]byte, error) {
	chunk, err := l.r.ReadBytes(l.delim)
	if len(chunk) == 0 {
		if err == nil {
			err = io.EOF
		}
		return nil, err
	}
	if err != nil && err != io.EOF {
		return nil, err
	}

	return chunk, nil
}

// Rewrite copies the document from r to w, replacing every line that
// contains Marker with "export ENV=<newEnv>\n". All other lines pass
// through byte for byte, in order. It reports how many lines were
// replaced; zero means the document came out unchanged.
func Rewrite(w io.Writer, r io.Reader, newEnv string) (int, error) {
	lines := NewLineReader(r, '\n')

	replaced := 0
	for {
		line, err := lines.Next()
		if err == io.EOF {
			return replaced, nil
		}
		if err != nil {
			return replaced, errors.Wrap(err, "fail to read envrc line")
		}

		if !utf8.Valid(line) {
			return replaced, errors.New("envrc appears to not be valid UTF-8")
		}

		if strings.Contains(string(line), Marker) {
			// \n is fine here, .envrc is a bash file anyway.
			line = []byte(fmt.Sprintf("export ENV=%s\n", newEnv))
			replaced++
		}

		if _, err := w.Write(line); err != nil {
			return replaced, errors.Wrap(err, "fail to write envrc line")
		}
	}
}

// SetEnvironment rewrites the .envrc at path atomically: the new
// document lands in a temp file next to the original and replaces it
// via rename, so a crash mid-write cannot leave a half-written file.
// The original file mode is preserved.
func SetEnvironment(path, newEnv string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "cannot open envrc file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "fail to stat envrc file")
	}

	var buf bytes.Buffer
	replaced, err := Rewrite(&buf, f, newEnv)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, errors.Wrap(err, "fail to create temp file for envrc rewrite")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return 0, errors.Wrap(err, "cannot write envrc file changes")
	}
	if err := tmp.Chmod(info.Mode()); err != nil {
		tmp.Close()
		return 0, errors.Wrap(err, "fail to preserve envrc file mode")
	}
	if err := tmp.Close(); err != nil {
		return 0, errors.Wrap(err, "cannot write envrc file changes")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, errors.Wrap(err, "fail to replace envrc file")
	}

	return replaced, nil
}
