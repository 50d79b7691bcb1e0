package sound

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"
)

// Player owns the audio device, the background music stream and the two
// sound effects. Close releases all of them.
type Player struct {
	music     rl.Music
	eat       rl.Sound
	collision rl.Sound
	closers   []func()
}

// Open initialises the audio device and loads every clip. On failure
// anything already acquired is released before returning.
func Open(musicPath, eatPath, collisionPath string) (_ *Player, err error) {
	p := &Player{}
	defer func() {
		if err != nil {
			p.Close()
		}
	}()

	rl.InitAudioDevice()
	p.closers = append(p.closers, rl.CloseAudioDevice)
	if !rl.IsAudioDeviceReady() {
		return nil, errors.New("audio device not ready")
	}

	p.music = rl.LoadMusicStream(musicPath)
	if !rl.IsMusicReady(p.music) {
		return nil, fmt.Errorf("load music %s", musicPath)
	}
	music := p.music
	p.closers = append(p.closers, func() { rl.UnloadMusicStream(music) })

	if p.eat, err = loadSound(eatPath); err != nil {
		return nil, err
	}
	eat := p.eat
	p.closers = append(p.closers, func() { rl.UnloadSound(eat) })

	if p.collision, err = loadSound(collisionPath); err != nil {
		return nil, err
	}
	collision := p.collision
	p.closers = append(p.closers, func() { rl.UnloadSound(collision) })

	rl.PlayMusicStream(p.music)
	log.WithField("music", musicPath).Debug("audio ready")
	return p, nil
}

func loadSound(path string) (rl.Sound, error) {
	s := rl.LoadSound(path)
	if !rl.IsSoundReady(s) {
		return s, fmt.Errorf("load sound %s", path)
	}
	return s, nil
}

// Update feeds the music stream. Call it once per frame.
func (p *Player) Update() {
	rl.UpdateMusicStream(p.music)
}

func (p *Player) PlayEat() {
	rl.PlaySound(p.eat)
}

func (p *Player) PlayCollision() {
	rl.PlaySound(p.collision)
}

func (p *Player) StopMusic() {
	rl.StopMusicStream(p.music)
}

// PlayMusic starts the music stream from the beginning.
func (p *Player) PlayMusic() {
	rl.PlayMusicStream(p.music)
}

// Close releases resources in reverse order of acquisition. It is safe to
// call more than once.
func (p *Player) Close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		p.closers[i]()
	}
	p.closers = nil
}

// Silent is used when sound is muted.
type Silent struct{}

func (Silent) Update()        {}
func (Silent) PlayEat()       {}
func (Silent) PlayCollision() {}
func (Silent) StopMusic()     {}
func (Silent) PlayMusic()     {}
func (Silent) Close()         {}
