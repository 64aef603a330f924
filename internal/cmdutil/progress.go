// internal/cmdutil/progress.go
package cmdutil

import (
	"io"

	"gopkg.in/cheggaaa/pb.v1"
)

// Progress is a stderr counter of scanned reads. The zero value and nil
// are valid no-op bars.
type Progress struct {
	bar *pb.ProgressBar
}

// StartProgress starts a bar on w. total may be 0 when unknown.
func StartProgress(w io.Writer, enabled bool, label string, total int) *Progress {
	if !enabled {
		return &Progress{}
	}
	bar := pb.New(total)
	bar.Output = w
	bar.ShowSpeed = true
	bar.Prefix(label + " ")
	bar.Start()
	return &Progress{bar: bar}
}

// Increment records one processed item. Safe for concurrent use.
func (p *Progress) Increment() {
	if p == nil || p.bar == nil {
		return
	}
	p.bar.Increment()
}

// Finish stops the bar.
func (p *Progress) Finish() {
	if p == nil || p.bar == nil {
		return
	}
	p.bar.Finish()
}
