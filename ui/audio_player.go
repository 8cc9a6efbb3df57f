package ui

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

const (
	clickSampleRate = 44100
	clickFrequency  = 800
	clickSamples    = clickSampleRate / 25
)

// A trivial player generating a short rectangular-wave click as feedback for
// widget presses.
type AudioPlayer struct {
	player *oto.Player
	source *clickSource
}

type clickSource struct {
	mutex     sync.Mutex
	pos       int
	remaining int
}

func (s *clickSource) Read(buf []byte) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	period := clickSampleRate / clickFrequency
	for i := range buf {
		if s.remaining > 0 {
			if s.pos%period < period/2 {
				buf[i] = 96
			} else {
				buf[i] = 160
			}
			s.pos++
			s.remaining--
		} else {
			buf[i] = 128
		}
	}
	return len(buf), nil
}

func (s *clickSource) click() {
	s.mutex.Lock()
	s.pos = 0
	s.remaining = clickSamples
	s.mutex.Unlock()
}

func NewAudioPlayer(context *oto.Context) *AudioPlayer {
	if context == nil {
		return &AudioPlayer{}
	}
	s := &clickSource{}
	p := &AudioPlayer{
		source: s,
		player: context.NewPlayer(s),
	}
	p.player.Play()
	return p
}

func (p *AudioPlayer) Click() {
	if p.source == nil {
		return
	}
	p.source.click()
}

func (p *AudioPlayer) Close() {
	if p.player == nil {
		return
	}
	p.player.Reset()
}
