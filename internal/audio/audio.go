package audio

import (
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const sampleRate = 22050

// Cue is a short sound tied to a game event.
type Cue int

const (
	CueJump Cue = iota
	CueLand
	CueRespawn
	CueWin
)

// tones describes each cue as a decaying sine: frequency in Hz, length in
// seconds, and how fast it fades.
var tones = map[Cue]struct {
	freq, seconds, decay float32
}{
	CueJump:    {freq: 660, seconds: 0.12, decay: 18},
	CueLand:    {freq: 180, seconds: 0.08, decay: 30},
	CueRespawn: {freq: 330, seconds: 0.35, decay: 6},
	CueWin:     {freq: 880, seconds: 0.6, decay: 3},
}

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// NewListener builds a listener from a camera basis. A degenerate forward
// falls back to -Z.
func NewListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos}

	if fwdLen := rl.Vector3Length(forward); fwdLen > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		l.Forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	}

	// Calculate right vector (up × forward)
	right := rl.Vector3CrossProduct(up, l.Forward)
	if rightLen := rl.Vector3Length(right); rightLen > 0.001 {
		l.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		l.Right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
	return l
}

// Spatialize returns the volume and pan (0 left, 0.5 center, 1 right) for a
// source at pos heard by l.
func Spatialize(l Listener, pos rl.Vector3, volume, maxDistance float32) (float32, float32) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)

	// Linear falloff
	var vol float32
	if distance < maxDistance {
		vol = volume * (1.0 - distance/maxDistance)
	}

	var pan float32 = 0.5
	if distance > 0.001 {
		direction := rl.Vector3Scale(toSource, 1.0/distance)
		pan = 0.5 + rl.Vector3DotProduct(direction, l.Right)*0.5
		pan = float32(math.Max(0, math.Min(1, float64(pan))))

		// Sounds behind are slightly quieter
		if frontDot := rl.Vector3DotProduct(direction, l.Forward); frontDot < 0 {
			vol *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
		}
	}
	return vol, pan
}

// Tone renders a mono 16-bit decaying sine.
func Tone(freq, seconds, decay float32, rate int) []int16 {
	n := int(seconds * float32(rate))
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(rate)
		env := math.Exp(-float64(decay) * t)
		samples[i] = int16(math.Sin(2*math.Pi*float64(freq)*t) * env * 0.6 * math.MaxInt16)
	}
	return samples
}

// Manager owns the generated cue sounds. A nil Manager is valid and silent.
type Manager struct {
	listener    Listener
	sounds      map[Cue]rl.Sound
	Volume      float32
	MaxDistance float32
}

// Init opens the audio device and renders every cue. It returns nil when no
// device is available.
func Init() *Manager {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return nil
	}

	m := &Manager{
		sounds:      make(map[Cue]rl.Sound, len(tones)),
		Volume:      0.8,
		MaxDistance: 60,
	}
	for cue, t := range tones {
		samples := Tone(t.freq, t.seconds, t.decay, sampleRate)
		data := unsafe.Slice((*byte)(unsafe.Pointer(&samples[0])), len(samples)*2)
		wave := rl.NewWave(uint32(len(samples)), sampleRate, 16, 1, data)

		sound := rl.LoadSoundFromWave(wave)
		if rl.IsSoundValid(sound) {
			m.sounds[cue] = sound
		}
	}
	return m
}

// Loaded reports how many cues have a playable sound.
func (m *Manager) Loaded() int {
	if m == nil {
		return 0
	}
	return len(m.sounds)
}

// SetListener updates the listener position and orientation
func (m *Manager) SetListener(pos, forward, up rl.Vector3) {
	if m == nil {
		return
	}
	m.listener = NewListener(pos, forward, up)
}

// Play starts a cue at pos. Non-spatial cues play centered at full volume.
func (m *Manager) Play(cue Cue, pos rl.Vector3, spatial bool) {
	if m == nil {
		return
	}
	sound, ok := m.sounds[cue]
	if !ok {
		return
	}

	vol, pan := m.Volume, float32(0.5)
	if spatial {
		vol, pan = Spatialize(m.listener, pos, m.Volume, m.MaxDistance)
	}
	rl.SetSoundVolume(sound, vol)
	rl.SetSoundPan(sound, pan)
	rl.PlaySound(sound)
}

// Close shuts down the audio system
func (m *Manager) Close() {
	if m == nil {
		return
	}
	for _, s := range m.sounds {
		rl.UnloadSound(s)
	}
	m.sounds = nil
	rl.CloseAudioDevice()
}
