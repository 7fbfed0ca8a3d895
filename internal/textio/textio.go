// Package textio provides bounded-lifetime text-file helpers: every
// function acquires its file handle, uses it, and releases it on all exit
// paths before returning.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dkoosis/drill/internal/errors"
)

// ReadLines returns the lines of path without trailing newlines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO(errors.ErrCodeFileNotFound, "open "+path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO(errors.ErrCodeInternal, "scan "+path, err)
	}

	return lines, nil
}

// WriteLines writes lines to path, replacing any existing content. The
// file is flushed and closed before WriteLines returns.
func WriteLines(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIO(errors.ErrCodeInternal, "create "+path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.NewIO(errors.ErrCodeInternal, "close "+path, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, werr := fmt.Fprintln(w, line); werr != nil {
			return errors.NewIO(errors.ErrCodeInternal, "write "+path, werr)
		}
	}
	if ferr := w.Flush(); ferr != nil {
		return errors.NewIO(errors.ErrCodeInternal, "flush "+path, ferr)
	}

	return nil
}

// AppendLine adds one line to the end of path, creating it if needed.
func AppendLine(path, line string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.NewIO(errors.ErrCodeInternal, "open "+path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.NewIO(errors.ErrCodeInternal, "close "+path, closeErr)
		}
	}()

	if _, werr := fmt.Fprintln(f, line); werr != nil {
		return errors.NewIO(errors.ErrCodeInternal, "append "+path, werr)
	}

	return nil
}

// CopyFile copies src to dst, truncating dst if it exists.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return errors.NewIO(errors.ErrCodeFileNotFound, "open "+src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.NewIO(errors.ErrCodeInternal, "create "+dst, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = errors.NewIO(errors.ErrCodeInternal, "close "+dst, closeErr)
		}
	}()

	if _, cerr := io.Copy(out, in); cerr != nil {
		return errors.NewIO(errors.ErrCodeInternal, "copy "+src+" to "+dst, cerr)
	}

	return nil
}

// CountLines returns the number of lines in path.
func CountLines(path string) (int, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}
