// Package constids maps names to the small integer IDs shared with the
// place-and-route tool.
//
// The well-known names are listed in constids.inc, one X(NAME) entry per
// line, and receive IDs 1, 2, ... in file order. ID 0 is the empty string.
// Names outside that list are interned on demand after the known ones.
package constids

import (
	"bufio"
	_ "embed"
	"io"
	"strings"

	errs "github.com/matzehuels/fabricgen/pkg/errors"
)

//go:embed constids.inc
var defaultInc string

// Table is a bidirectional name/ID table. It is not safe for concurrent use.
type Table struct {
	names []string // index = ID
	ids   map[string]int
	known int
}

// Parse reads X(NAME) entries. Blank lines and lines starting with // or #
// are skipped.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{names: []string{""}, ids: map[string]int{"": 0}}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "//") || strings.HasPrefix(s, "#") {
			continue
		}
		if !strings.HasPrefix(s, "X(") || !strings.HasSuffix(s, ")") {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "constids line %d: expected X(NAME), got %q", line, s)
		}
		name := strings.TrimSpace(s[2 : len(s)-1])
		if name == "" {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "constids line %d: empty name", line)
		}
		if _, ok := t.ids[name]; ok {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "constids line %d: %s listed twice", line, name)
		}
		t.add(name)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "read constids")
	}
	t.known = len(t.names) - 1
	return t, nil
}

// Default returns a fresh table holding the built-in names.
func Default() *Table {
	t, err := Parse(strings.NewReader(defaultInc))
	if err != nil {
		panic("constids: embedded table: " + err.Error())
	}
	return t
}

func (t *Table) add(name string) int {
	id := len(t.names)
	t.names = append(t.names, name)
	t.ids[name] = id
	return id
}

// ID returns the ID of name, if it has one.
func (t *Table) ID(name string) (int, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// Intern returns the ID of name, assigning the next free ID when needed.
func (t *Table) Intern(name string) int {
	if id, ok := t.ids[name]; ok {
		return id
	}
	return t.add(name)
}

// Name returns the name with the given ID.
func (t *Table) Name(id int) (string, bool) {
	if id < 0 || id >= len(t.names) {
		return "", false
	}
	return t.names[id], true
}

// Known returns the number of names read by Parse.
func (t *Table) Known() int { return t.known }

// Len returns the number of IDs assigned, excluding the empty string.
func (t *Table) Len() int { return len(t.names) - 1 }

// IsKnown reports whether id was assigned by Parse rather than Intern.
func (t *Table) IsKnown(id int) bool { return id >= 0 && id <= t.known }

// Names returns every name by ID, starting at ID 1.
func (t *Table) Names() []string {
	return append([]string(nil), t.names[1:]...)
}

// Extra returns the names interned after parsing, in ID order.
func (t *Table) Extra() []string {
	return append([]string(nil), t.names[t.known+1:]...)
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		names: append([]string(nil), t.names...),
		ids:   make(map[string]int, len(t.ids)),
		known: t.known,
	}
	for k, v := range t.ids {
		c.ids[k] = v
	}
	return c
}
