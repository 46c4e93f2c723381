// SPDX-License-Identifier: EPL-2.0

// Package progress wraps mpb bars for the long running batch commands.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar counts finished items. The zero Bar and a nil *Bar do nothing.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New starts a bar of total items titled name on w. A nil w gives a silent
// bar.
func New(w io.Writer, name string, total int) *Bar {
	if w == nil {
		return &Bar{}
	}

	p := mpb.New(mpb.WithOutput(w), mpb.WithWidth(48))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(name+" "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)

	return &Bar{p: p, bar: bar}
}

// Increment marks one item done.
func (b *Bar) Increment() {
	if b == nil || b.bar == nil {
		return
	}
	b.bar.Increment()
}

// Done completes the bar, even when fewer items than announced were
// processed, and waits for the final render.
func (b *Bar) Done() {
	if b == nil || b.p == nil {
		return
	}
	b.bar.SetTotal(-1, true)
	b.p.Wait()
}
