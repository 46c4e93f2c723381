// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output is where the player sends its stream. Lock and Unlock guard
// changes to a stream that is already playing.
type Output interface {
	SampleRate() beep.SampleRate
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// DefaultRate is the rate the speaker is opened at.
const DefaultRate beep.SampleRate = 44100

// Speaker is the system audio device.
type Speaker struct {
	rate beep.SampleRate
}

// NewSpeaker opens the audio device at rate with a buffer of latency.
// The device can only be opened once per process.
func NewSpeaker(rate beep.SampleRate, latency time.Duration) (*Speaker, error) {
	if err := speaker.Init(rate, rate.N(latency)); err != nil {
		return nil, fmt.Errorf("opening speaker: %w", err)
	}
	return &Speaker{rate: rate}, nil
}

func (s *Speaker) SampleRate() beep.SampleRate { return s.rate }
func (s *Speaker) Play(st beep.Streamer)       { speaker.Play(st) }
func (s *Speaker) Clear()                      { speaker.Clear() }
func (s *Speaker) Lock()                       { speaker.Lock() }
func (s *Speaker) Unlock()                     { speaker.Unlock() }

// Close releases the device.
func (s *Speaker) Close() {
	speaker.Close()
}
