// Package notes holds the embedded study notes: Markdown cheat-sheets with
// no executable component, listed and rendered by the CLI and by serve
// mode. Extra note directories from config are layered over the embedded
// set, letting a local file shadow a built-in note.
package notes

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/drill/internal/errors"
)

//go:embed content/*.md
var content embed.FS

// Note is one study note.
type Note struct {
	Name  string // file stem, e.g. "value-objects"
	Title string // first heading, or a cased fallback
	Body  string
}

// Catalog is the loaded note set.
type Catalog struct {
	notes map[string]Note
}

var titleCaser = cases.Title(language.English)

// NewCatalog loads the embedded notes and layers extraPaths over them.
func NewCatalog(extraPaths ...string) (*Catalog, error) {
	c := &Catalog{notes: make(map[string]Note)}

	entries, err := fs.ReadDir(content, "content")
	if err != nil {
		return nil, errors.NewInternal(errors.ErrCodeInternal, "read embedded notes", err)
	}
	for _, entry := range entries {
		data, err := content.ReadFile("content/" + entry.Name())
		if err != nil {
			return nil, errors.NewInternal(errors.ErrCodeInternal, "read note "+entry.Name(), err)
		}
		c.add(entry.Name(), string(data))
	}

	for _, dir := range extraPaths {
		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.NewIO(errors.ErrCodeFileNotFound, "read notes dir "+dir, err)
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, file.Name()))
			if err != nil {
				return nil, errors.NewIO(errors.ErrCodeFileNotFound, "read note "+file.Name(), err)
			}
			c.add(file.Name(), string(data))
		}
	}

	return c, nil
}

func (c *Catalog) add(filename, body string) {
	name := strings.TrimSuffix(filename, ".md")
	c.notes[name] = Note{
		Name:  name,
		Title: titleOf(name, body),
		Body:  body,
	}
}

func titleOf(name, body string) string {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}

	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

// List returns all notes sorted by name.
func (c *Catalog) List() []Note {
	out := make([]Note, 0, len(c.notes))
	for _, note := range c.notes {
		out = append(out, note)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns one note by name.
func (c *Catalog) Get(name string) (Note, error) {
	note, exists := c.notes[name]
	if !exists {
		return Note{}, errors.ErrNoteNotFound(name)
	}
	return note, nil
}

// Len returns the number of notes.
func (c *Catalog) Len() int {
	return len(c.notes)
}
