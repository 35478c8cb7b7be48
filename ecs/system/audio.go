package system

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const SampleRate = 44100

// tone is a square-ish sweep from From to To hertz.
type tone struct {
	From, To float64
	Seconds  float64
	Volume   float64
	// Steps > 0 quantizes the sweep into that many notes.
	Steps int
}

var sfxTones = map[string]tone{
	SfxHit:    {From: 220, To: 110, Seconds: 0.15, Volume: 0.5},
	SfxKill:   {From: 660, To: 330, Seconds: 0.08, Volume: 0.3},
	SfxGem:    {From: 880, To: 1320, Seconds: 0.1, Volume: 0.3, Steps: 2},
	SfxCharm:  {From: 523, To: 1046, Seconds: 0.24, Volume: 0.35, Steps: 4},
	SfxExpire: {From: 440, To: 330, Seconds: 0.12, Volume: 0.3, Steps: 2},
	SfxWave:   {From: 110, To: 98, Seconds: 0.3, Volume: 0.35},
	SfxDeath:  {From: 330, To: 55, Seconds: 0.6, Volume: 0.5},
}

// AudioSystem plays the sounds queued on Sfx components. Without an audio
// context the queue is still drained, which keeps headless runs quiet.
type AudioSystem struct {
	ctx     *audio.Context
	players map[string]*audio.Player
	Volume  float64
}

func NewAudioSystem(ctx *audio.Context) *AudioSystem {
	return &AudioSystem{ctx: ctx, players: map[string]*audio.Player{}, Volume: 1}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.SfxComponent.Kind(), func(_ ecs.Entity, sfx *component.Sfx) {
		for _, name := range sfx.Play {
			a.play(name)
		}
		sfx.Play = sfx.Play[:0]
	})
}

func (a *AudioSystem) play(name string) {
	if a.ctx == nil {
		return
	}
	player, ok := a.players[name]
	if !ok {
		t, known := sfxTones[name]
		if !known {
			logf("audio", "unknown sfx %q", name)
			return
		}
		player = a.ctx.NewPlayerFromBytes(synth(t, a.ctx.SampleRate()))
		a.players[name] = player
	}
	player.SetVolume(a.Volume)
	if err := player.Rewind(); err != nil {
		logf("audio", "rewind %q: %v", name, err)
		return
	}
	player.Play()
}

// synth renders t as 16 bit little endian stereo PCM.
func synth(t tone, sampleRate int) []byte {
	n := int(t.Seconds * float64(sampleRate))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		switch {
		case t.Steps == 1:
			p = 0
		case t.Steps > 1:
			p = math.Min(math.Floor(p*float64(t.Steps))/float64(t.Steps-1), 1)
		}
		freq := t.From + (t.To-t.From)*p
		phase += freq / float64(sampleRate)
		s := 1.0
		if math.Mod(phase, 1) >= 0.5 {
			s = -1
		}
		// linear fade out so clips never click
		env := 1 - float64(i)/float64(n)
		v := int16(s * env * t.Volume * math.MaxInt16 * 0.5)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
