// Package format renders note lists for the terminal and for export to
// other tools.
package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/export"
)

// EmptyMessage is printed by the text encoder for an empty list.
const EmptyMessage = "No tasks yet. Add one above!"

// TimeLayout is used for timestamps in CSV output.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Encoder writes a note list in a specific format.
type Encoder interface {
	Encode(w io.Writer, notes core.NoteList) error
}

// Encoders returns the standard set of encoders keyed by name.
func Encoders(loc *time.Location) map[string]Encoder {
	return map[string]Encoder{
		"json": JSONEncoder{Indent: "  "},
		"yaml": YAMLEncoder{},
		"csv":  CSVEncoder{},
		"text": TextEncoder{Location: loc},
	}
}

// Names lists the registered encoder names in order.
func Names() []string {
	names := make([]string, 0, 4)
	for name := range Encoders(time.UTC) {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the encoder registered under name.
func Lookup(name string, loc *time.Location) (Encoder, error) {
	enc, ok := Encoders(loc)[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return enc, nil
}

// --- JSON ---

// JSONEncoder writes the same array layout that is persisted in a slot.
type JSONEncoder struct {
	Indent string
}

func (e JSONEncoder) Encode(w io.Writer, notes core.NoteList) error {
	if notes == nil {
		notes = core.NoteList{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", e.Indent)
	return enc.Encode(notes)
}

// --- YAML ---

type YAMLEncoder struct{}

func (YAMLEncoder) Encode(w io.Writer, notes core.NoteList) error {
	if notes == nil {
		notes = core.NoteList{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(notes); err != nil {
		return err
	}
	return enc.Close()
}

// --- CSV ---

// CSVHeader is the first row written by CSVEncoder.
var CSVHeader = []string{"id", "title", "content", "createdAt", "updatedAt"}

type CSVEncoder struct{}

func (CSVEncoder) Encode(w io.Writer, notes core.NoteList) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, n := range notes {
		updated := ""
		if n.UpdatedAt != nil {
			updated = n.UpdatedAt.UTC().Format(TimeLayout)
		}
		row := []string{
			strconv.FormatInt(n.ID, 10),
			n.Title,
			n.Content,
			n.CreatedAt.UTC().Format(TimeLayout),
			updated,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// --- Text ---

// TextEncoder prints one block per note, the way the list view shows it.
type TextEncoder struct {
	Location *time.Location
}

func (e TextEncoder) Encode(w io.Writer, notes core.NoteList) error {
	if len(notes) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	loc := e.Location
	if loc == nil {
		loc = time.Local
	}

	var buf bytes.Buffer
	for i, n := range notes {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "[%d] %s\n", n.ID, n.Title)
		for _, line := range strings.Split(n.Content, "\n") {
			fmt.Fprintf(&buf, "    %s\n", line)
		}
		fmt.Fprintf(&buf, "    %s\n", export.Stamp(n, loc))
	}
	_, err := w.Write(buf.Bytes())
	return err
}
