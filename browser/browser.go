// SPDX-License-Identifier: EPL-2.0

// Package browser is a terminal front end that walks a dataset entry by
// entry and plays the selected file.
package browser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/audset/dataset"
	"github.com/ik5/audset/internal/logging"
	"github.com/ik5/audset/player"
)

// Player is the playback side used by the browser.
type Player interface {
	Load(path string) error
	Toggle() error
	Stop()
	State() player.State
	AdjustVolume(delta float64) float64
	OnStateChange(fn func(player.State))
}

// Picker asks the user for an annotation file. An empty path with a nil
// error means the user cancelled.
type Picker func() (string, error)

// Config wires a Browser.
type Config struct {
	In     io.Reader
	Out    io.Writer
	Player Player
	Picker Picker // nil falls back to a typed path
	Logger logging.Logger
}

// Browser holds the session state: the loaded annotation, an iterator over
// it and what is shown for the current entry.
type Browser struct {
	in     *bufio.Reader
	out    io.Writer
	player Player
	pick   Picker
	log    logging.Logger

	mu         sync.Mutex
	it         *dataset.Iterator
	annotation string
	entry      dataset.Entry
	status     string
	playable   bool
	message    string
	closed     bool
}

// New returns a browser with nothing loaded.
func New(cfg Config) *Browser {
	b := &Browser{
		in:         bufio.NewReader(cfg.In),
		out:        cfg.Out,
		player:     cfg.Player,
		pick:       cfg.Picker,
		log:        logging.Or(cfg.Logger),
		annotation: "(none)",
	}

	if b.player != nil {
		b.player.OnStateChange(func(player.State) {
			// may fire while a key handler holds b.mu
			go b.redraw()
		})
	}

	return b
}

// Open loads the annotation at path and shows its first entry. On failure
// the previous dataset is dropped and the error is shown.
func (b *Browser) Open(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stop()
	b.message = ""

	idx, err := dataset.Load(path)
	if err != nil {
		b.it = nil
		b.annotation = "ERROR"
		b.entry = dataset.Entry{}
		b.status = ""
		b.playable = false
		b.message = err.Error()
		b.log.Errorf("loading %s: %v", path, err)
		return err
	}

	b.it = dataset.NewIterator(idx)
	b.annotation = filepath.Base(path)
	b.log.Infof("loaded %d entries from %s", idx.Len(), path)

	e, ok := b.it.Next()
	b.show(e, ok)

	return nil
}

// Handle applies one key and reports whether the session should end.
func (b *Browser) Handle(k Key) bool {
	switch k {
	case KeyQuit:
		b.mu.Lock()
		b.stop()
		b.closed = true
		b.mu.Unlock()
		return true
	case KeyOpen:
		b.openPicked()
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch k {
	case KeyNext, KeyPrevious:
		b.stop()
		if b.it == nil {
			return false
		}
		var (
			e  dataset.Entry
			ok bool
		)
		if k == KeyNext {
			e, ok = b.it.Next()
		} else {
			e, ok = b.it.Previous()
		}
		b.show(e, ok)
	case KeyToggle:
		if !b.playable || b.player == nil {
			return false
		}
		b.message = ""
		if err := b.player.Toggle(); err != nil {
			b.message = err.Error()
			if errors.Is(err, player.ErrFileMissing) {
				b.status = "file not found"
				b.playable = false
			}
		}
	case KeyVolumeUp, KeyVolumeDown:
		if b.player == nil {
			return false
		}
		delta := 0.5
		if k == KeyVolumeDown {
			delta = -delta
		}
		b.message = fmt.Sprintf("volume %+.1f", b.player.AdjustVolume(delta))
	}

	return false
}

func (b *Browser) openPicked() {
	path, err := b.choose()
	if err != nil {
		b.mu.Lock()
		b.message = err.Error()
		b.mu.Unlock()
		return
	}
	if path == "" {
		return
	}
	_ = b.Open(path)
}

func (b *Browser) choose() (string, error) {
	if b.pick != nil {
		path, err := b.pick()
		if err == nil {
			return path, nil
		}
		b.log.Warnf("file dialog: %v", err)
	}

	io.WriteString(b.out, "\r\nannotation path: ")
	path, err := readLine(b.in, b.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

// show makes e the displayed entry. b.mu must be held.
func (b *Browser) show(e dataset.Entry, ok bool) {
	b.status = ""
	b.playable = false

	if !ok {
		b.entry = dataset.Entry{Name: "End of dataset", Duration: dataset.UnknownDuration}
		return
	}
	b.entry = e

	if _, err := os.Stat(e.Path); err != nil {
		b.status = "file not found"
		return
	}
	if b.player == nil {
		return
	}
	if err := b.player.Load(e.Path); err != nil {
		b.status = "cannot play"
		b.message = err.Error()
		if errors.Is(err, player.ErrFileMissing) {
			b.status = "file not found"
		}
		return
	}
	b.playable = true
}

func (b *Browser) stop() {
	if b.player != nil {
		b.player.Stop()
	}
}

// View returns the screen contents, one string per line.
func (b *Browser) View() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view()
}

func (b *Browser) view() []string {
	name := b.entry.Name
	duration := b.entry.Duration
	if name == "" {
		name = "---"
		duration = dataset.UnknownDuration
	}
	if b.status != "" {
		name = fmt.Sprintf("%s (%s)", name, b.status)
	}

	state := "-"
	if b.playable && b.player != nil {
		state = b.player.State().String()
	}

	lines := []string{
		"annotation: " + b.annotation,
		"",
		name,
		"Duration: " + duration,
		"State: " + state,
		"",
		"[p/←] previous  [space] play/pause  [n/→] next  [+/-] volume  [o] open  [q] quit",
	}
	if b.message != "" {
		lines = append(lines, "", b.message)
	}
	return lines
}

func (b *Browser) redraw() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.render()
}

// render draws the screen. b.mu must be held.
func (b *Browser) render() {
	if b.closed || b.out == nil {
		return
	}
	io.WriteString(b.out, "\x1b[2J\x1b[H"+strings.Join(b.view(), "\r\n")+"\r\n")
}

// Run reads keys until quit, end of input or ctx is done.
func (b *Browser) Run(ctx context.Context) error {
	b.redraw()

	for {
		if err := ctx.Err(); err != nil {
			b.Handle(KeyQuit)
			return err
		}

		k, err := ReadKey(b.in)
		if err != nil {
			b.Handle(KeyQuit)
			return fmt.Errorf("reading input: %w", err)
		}

		if b.Handle(k) {
			return nil
		}
		b.redraw()
	}
}
