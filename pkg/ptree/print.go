package ptree

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Print writes the rendering of v to standard output, every row followed by
// a newline.
func Print(v any, opts ...Option) error {
	return Fprint(os.Stdout, v, opts...)
}

// Fprint writes the rendering of v to w, every row followed by a newline.
// Nothing is written when the options are invalid.
func Fprint(w io.Writer, v any, opts ...Option) error {
	seq, err := Lines(v, opts...)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for line := range seq {
		// bufio keeps the first write error; Flush reports it.
		_, _ = bw.WriteString(line)
		_ = bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "writing tree")
	}
	return nil
}

// Sprint returns the rendering of v with rows separated by newlines and no
// trailing newline.
func Sprint(v any, opts ...Option) (string, error) {
	seq, err := Lines(v, opts...)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	first := true
	for line := range seq {
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(line)
	}
	return sb.String(), nil
}

// MustSprint is like Sprint but panics on invalid options.
func MustSprint(v any, opts ...Option) string {
	s, err := Sprint(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
