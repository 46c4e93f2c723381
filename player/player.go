// SPDX-License-Identifier: EPL-2.0

// Package player plays dataset entries one at a time through a beep
// output.
package player

import (
	"fmt"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/ik5/audset"
	"github.com/ik5/audset/audio"
	"github.com/ik5/audset/internal/logging"
)

// State is the playback state.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Player plays one file at a time. It is safe for concurrent use; the
// state callback runs without the player's lock held.
type Player struct {
	out Output
	reg *audio.Registry
	log logging.Logger

	mu       sync.Mutex
	path     string
	src      audio.Source
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    float64 // base 2 steps, 0 is unity
	state    State
	track    int // bumps on every start so a stale end of track is ignored
	onChange func(State)
}

// New returns a stopped player writing to out. A nil reg uses the bundled
// decoders.
func New(out Output, reg *audio.Registry, log logging.Logger) *Player {
	if reg == nil {
		reg = audset.NewRegistry()
	}
	return &Player{out: out, reg: reg, log: logging.Or(log)}
}

// OnStateChange registers fn to be called after every state change.
func (p *Player) OnStateChange(fn func(State)) {
	p.mu.Lock()
	p.onChange = fn
	p.mu.Unlock()
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Path returns the loaded file.
func (p *Player) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

// Load stops playback and selects path for the next Play.
func (p *Player) Load(path string) error {
	p.Stop()

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrFileMissing, path)
	}
	if _, ok := p.reg.ForPath(path); !ok {
		return fmt.Errorf("%w: %s", audset.ErrUnsupportedFormat, path)
	}

	p.mu.Lock()
	p.path = path
	p.mu.Unlock()

	return nil
}

// Play starts the loaded file from the beginning, or resumes it if paused.
func (p *Player) Play() error {
	p.mu.Lock()

	switch p.state {
	case Playing:
		p.mu.Unlock()
		return nil
	case Paused:
		p.out.Lock()
		p.ctrl.Paused = false
		p.out.Unlock()
		p.setState(Playing)
		return nil
	}

	if p.path == "" {
		p.mu.Unlock()
		return ErrNotLoaded
	}
	if _, err := os.Stat(p.path); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrFileMissing, p.path)
	}

	src, err := audset.OpenFile(p.reg, p.path)
	if err != nil {
		p.mu.Unlock()
		return err
	}

	var s audio.Source = src
	if rate := int(p.out.SampleRate()); rate > 0 && src.SampleRate() != rate {
		s = audio.NewResampler(src, rate)
	}

	p.track++
	track := p.track
	p.src = src
	p.volume = &effects.Volume{
		Streamer: beep.Seq(newStreamer(s), beep.Callback(func() {
			// runs on the output goroutine, possibly under its lock
			go p.finished(track)
		})),
		Base:   2,
		Volume: p.level,
		Silent: p.level <= MinVolume,
	}
	p.ctrl = &beep.Ctrl{Streamer: p.volume}
	p.out.Play(p.ctrl)
	p.log.Debugf("playing %s", p.path)
	p.setState(Playing)

	return nil
}

// Volume bounds in base 2 steps. MinVolume mutes.
const (
	MinVolume = -6.0
	MaxVolume = 2.0
)

// Volume returns the current level.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// AdjustVolume changes the level by delta, clamped to
// [MinVolume, MaxVolume], and returns the new level. It applies to the
// current track and to those played later.
func (p *Player) AdjustVolume(delta float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.level = min(max(p.level+delta, MinVolume), MaxVolume)
	if p.volume != nil {
		p.out.Lock()
		p.volume.Volume = p.level
		p.volume.Silent = p.level <= MinVolume
		p.out.Unlock()
	}
	return p.level
}

// Pause halts playback, keeping the position.
func (p *Player) Pause() {
	p.mu.Lock()
	if p.state != Playing {
		p.mu.Unlock()
		return
	}

	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
	p.setState(Paused)
}

// Toggle pauses while playing and plays otherwise.
func (p *Player) Toggle() error {
	if p.State() == Playing {
		p.Pause()
		return nil
	}
	return p.Play()
}

// Stop halts playback and rewinds to the start of the file.
func (p *Player) Stop() {
	p.mu.Lock()
	if p.state == Stopped {
		p.mu.Unlock()
		return
	}

	p.out.Clear()
	p.release()
	p.setState(Stopped)
}

func (p *Player) finished(track int) {
	p.mu.Lock()
	if track != p.track || p.state == Stopped {
		p.mu.Unlock()
		return
	}

	p.release()
	p.setState(Stopped)
}

// release closes the open source. p.mu must be held.
func (p *Player) release() {
	if p.src != nil {
		if err := p.src.Close(); err != nil {
			p.log.Warnf("closing %s: %v", p.path, err)
		}
	}
	p.src = nil
	p.ctrl = nil
	p.volume = nil
}

// setState records s, releases p.mu and notifies the callback.
func (p *Player) setState(s State) {
	changed := p.state != s
	p.state = s
	fn := p.onChange
	p.mu.Unlock()

	if changed && fn != nil {
		fn(s)
	}
}
