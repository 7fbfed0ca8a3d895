package drills

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dkoosis/drill/internal/registry"
	"github.com/dkoosis/drill/internal/textio"
)

const scopedFilesTranscript = `=== scoped file handles ===
wrote 3 lines
read back: first
read back: second
read back: third
appended one line, count now 4
copy has 4 lines
`

func runScopedFiles(w io.Writer) error {
	fmt.Fprintln(w, "=== scoped file handles ===")

	dir, err := os.MkdirTemp("", "drill-textio-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "lines.txt")
	if err := textio.WriteLines(path, []string{"first", "second", "third"}); err != nil {
		return err
	}
	fmt.Fprintln(w, "wrote 3 lines")

	lines, err := textio.ReadLines(path)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(w, "read back:", line)
	}

	if err := textio.AppendLine(path, "fourth"); err != nil {
		return err
	}
	count, err := textio.CountLines(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "appended one line, count now %d\n", count)

	copyPath := filepath.Join(dir, "copy.txt")
	if err := textio.CopyFile(path, copyPath); err != nil {
		return err
	}
	copyCount, err := textio.CountLines(copyPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "copy has %d lines\n", copyCount)

	return nil
}

func textioDrills() []*registry.DrillInfo {
	return []*registry.DrillInfo{
		{
			Name:       "scoped-files",
			Topic:      "textio",
			Summary:    "file handles are acquired and released on all exit paths",
			Transcript: scopedFilesTranscript,
			Run:        runScopedFiles,
		},
	}
}
