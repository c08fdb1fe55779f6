package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// runObserver adapts batch progress events to the terminal. Interactive
// sessions get a progress bar; everything else gets plain status lines.
type runObserver struct {
	out   io.Writer
	bar   *progressbar.ProgressBar
	plain bool
}

func newRunObserver(out io.Writer, total int) *runObserver {
	if !writerIsTerminal(out) {
		return &runObserver{out: out, plain: true}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("matching"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(false),
	)
	return &runObserver{out: out, bar: bar}
}

func (o *runObserver) Progress(current, total int) {
	if o.plain {
		return
	}
	_ = o.bar.Set(current)
}

func (o *runObserver) Status(message string) {
	if o.plain {
		fmt.Fprintln(o.out, message)
		return
	}
	o.bar.Describe(message)
}

func (o *runObserver) finish() {
	if o.plain || o.bar == nil {
		return
	}
	_ = o.bar.Finish()
}

func writerIsTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
