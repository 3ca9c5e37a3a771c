package gridview

import (
	"io"

	errs "github.com/matzehuels/fabricgen/pkg/errors"
	"github.com/matzehuels/fabricgen/pkg/fabric"
)

// Diagram formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// Formats lists the diagram formats in the order they are documented.
var Formats = []string{FormatDOT, FormatSVG, FormatPNG, FormatPDF}

// Writer emits a diagram of a chip in one format.
type Writer struct {
	format string
	opts   Options
}

// NewWriter returns a writer for format.
func NewWriter(format string, opts Options) (*Writer, error) {
	switch format {
	case FormatDOT, FormatSVG, FormatPNG, FormatPDF:
		return &Writer{format: format, opts: opts}, nil
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown diagram format %q", format)
}

// Format returns the diagram format.
func (w *Writer) Format() string { return w.format }

// Write renders chip and writes the result to out.
func (w *Writer) Write(out io.Writer, chip *fabric.Chip) error {
	if chip == nil || chip.Grid == nil {
		return errs.New(errs.ErrCodeArchive, "chip has no grid")
	}
	dot := ToDOT(chip.Grid, chip.Nodes, w.opts)
	if w.format == FormatDOT {
		_, err := io.WriteString(out, dot)
		return err
	}

	data, err := RenderSVG(dot)
	if err != nil {
		return err
	}
	switch w.format {
	case FormatPNG:
		data, err = ToPNG(data, 2.0)
	case FormatPDF:
		data, err = ToPDF(data)
	}
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
