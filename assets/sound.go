package assets

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Sound is a gameplay cue.
type Sound int

const (
	SoundLaunch Sound = iota
	SoundTrap
	SoundTreasure
	SoundComplete
	SoundFail
)

type tone struct {
	freq     float64
	duration float64
}

var tones = map[Sound][]tone{
	SoundLaunch:   {{freq: 330, duration: 0.08}},
	SoundTrap:     {{freq: 220, duration: 0.12}, {freq: 147, duration: 0.2}},
	SoundTreasure: {{freq: 880, duration: 0.06}, {freq: 1320, duration: 0.1}},
	SoundComplete: {{freq: 523, duration: 0.1}, {freq: 659, duration: 0.1}, {freq: 784, duration: 0.2}},
	SoundFail:     {{freq: 196, duration: 0.15}, {freq: 131, duration: 0.35}},
}

// Sounds plays generated cues. A disabled Sounds never touches the audio
// device.
type Sounds struct {
	enabled bool
	ctx     *audio.Context
	pcm     map[Sound][]byte
}

func NewSounds(enabled bool) *Sounds {
	return &Sounds{enabled: enabled, pcm: make(map[Sound][]byte)}
}

func (s *Sounds) Enabled() bool { return s.enabled }

func (s *Sounds) SetEnabled(on bool) { s.enabled = on }

func (s *Sounds) Play(snd Sound) {
	if !s.enabled {
		return
	}
	if s.ctx == nil {
		// ebiten allows one audio context per process
		if s.ctx = audio.CurrentContext(); s.ctx == nil {
			s.ctx = audio.NewContext(sampleRate)
		}
	}
	data, ok := s.pcm[snd]
	if !ok {
		data = synth(tones[snd])
		s.pcm[snd] = data
	}
	s.ctx.NewPlayerFromBytes(data).Play()
}

// synth renders the tones back to back as 16-bit little-endian stereo PCM,
// each with a linear fade-out.
func synth(seq []tone) []byte {
	var out []byte
	for _, t := range seq {
		n := int(t.duration * sampleRate)
		buf := make([]byte, n*4)
		for i := range n {
			fade := 1 - float64(i)/float64(n)
			v := int16(0.3 * fade * math.MaxInt16 * math.Sin(2*math.Pi*t.freq*float64(i)/sampleRate))
			binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
			binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
		}
		out = append(out, buf...)
	}
	return out
}
