package errors

import (
	"io"

	"github.com/fatih/color"
)

// Reporter is the diagnostic sink shared by every pipeline stage.
type Reporter interface {
	Syntax(err SyntaxError)
	Runtime(err RuntimeError)
}

// WriterReporter writes diagnostics to an io.Writer and remembers which
// kinds it has seen so the caller can pick an exit status. Color is only
// used when colored is set and the process output is a terminal.
type WriterReporter struct {
	writer          io.Writer
	paint           *color.Color
	hadError        bool
	hadRuntimeError bool
}

func NewWriterReporter(w io.Writer, colored bool) *WriterReporter {
	paint := color.New(color.FgRed)
	if !colored {
		paint.DisableColor()
	}

	return &WriterReporter{
		writer: w,
		paint:  paint,
	}
}

func (r *WriterReporter) Syntax(err SyntaxError) {
	r.paint.Fprintln(r.writer, err.Error())
	r.hadError = true
}

func (r *WriterReporter) Runtime(err RuntimeError) {
	r.paint.Fprintln(r.writer, err.Error())
	r.hadRuntimeError = true
}

// ReportAll forwards every syntax error held by err. Other errors are
// returned untouched.
func ReportAll(r Reporter, err error) error {
	switch e := err.(type) {
	case nil:
		return nil
	case List:
		for _, se := range e {
			r.Syntax(se)
		}
		return nil
	case SyntaxError:
		r.Syntax(e)
		return nil
	case RuntimeError:
		r.Runtime(e)
		return nil
	}
	return err
}

func (r *WriterReporter) HadError() bool {
	return r.hadError
}

func (r *WriterReporter) HadRuntimeError() bool {
	return r.hadRuntimeError
}

// Reset clears both flags. The prompt calls it before every line.
func (r *WriterReporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}

