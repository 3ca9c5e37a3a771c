// Package archive serializes a finished [fabric.Chip] for the place-and-route
// tool.
//
// Two writers are provided: [BBAWriter] produces the line-oriented BBA text
// stream that the bba assembler turns into a binary chip database, and
// [JSONWriter] produces an indented JSON document of the same content.
//
//	w, err := archive.New(archive.FormatBBA)
//	if err != nil {
//		return err
//	}
//	if err := archive.ExportFile("chipdb-test.bba", w, chip); err != nil {
//		return err
//	}
package archive

import (
	"bufio"
	"bytes"
	"io"
	"os"

	errs "github.com/matzehuels/fabricgen/pkg/errors"
	"github.com/matzehuels/fabricgen/pkg/fabric"
)

// Format names.
const (
	FormatBBA  = "bba"
	FormatJSON = "json"
)

// Writer serializes a chip in one format.
type Writer interface {
	// Format returns the format name, which doubles as the file extension.
	Format() string
	// Write serializes chip to w.
	Write(w io.Writer, chip *fabric.Chip) error
}

// New returns the writer for a built-in format.
func New(format string) (Writer, error) {
	switch format {
	case FormatBBA:
		return &BBAWriter{}, nil
	case FormatJSON:
		return &JSONWriter{}, nil
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown archive format %q", format)
}

// Encode runs w over chip and returns the serialized bytes.
func Encode(w Writer, chip *fabric.Chip) ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Write(&buf, chip); err != nil {
		return nil, errs.Wrap(errs.ErrCodeArchive, err, "encode %s", w.Format())
	}
	return buf.Bytes(), nil
}

// ExportFile writes chip to path. The file is created with 0644 permissions
// and truncated if it exists.
func ExportFile(path string, w Writer, chip *fabric.Chip) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeArchive, err, "create %s", path)
	}
	bw := bufio.NewWriter(f)
	if err := w.Write(bw, chip); err != nil {
		f.Close()
		return errs.Wrap(errs.ErrCodeArchive, err, "write %s", path)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return errs.Wrap(errs.ErrCodeArchive, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeArchive, err, "close %s", path)
	}
	return nil
}

func checkChip(chip *fabric.Chip) error {
	if chip == nil || chip.Library == nil || chip.Grid == nil {
		return errs.New(errs.ErrCodeArchive, "chip is missing its library or grid")
	}
	return nil
}
