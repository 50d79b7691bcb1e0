package main

import (
	"flag"
	"fmt"
	"time"

	"retro-snake/asset"
	"retro-snake/game"
	"retro-snake/game/clock"
	"retro-snake/game/types"
	"retro-snake/sound"
	"retro-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// audioPlayer is what the frame loop needs from the sound backend on top
// of the game's own Audio calls.
type audioPlayer interface {
	game.Audio
	Update()
	Close()
}

func main() {
	cfg := types.DefaultConfig()
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second")
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Time between snake moves")
	flag.StringVar(&cfg.SpritePath, "sprite", cfg.SpritePath, "Food sprite image (png, bmp or webp)")
	flag.StringVar(&cfg.MusicPath, "music", cfg.MusicPath, "Background music stream")
	flag.StringVar(&cfg.EatSoundPath, "eat-sound", cfg.EatSoundPath, "Sound played when food is eaten")
	flag.StringVar(&cfg.CollisionSoundPath, "collision-sound", cfg.CollisionSoundPath, "Sound played on game over")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable music and sound effects")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for food placement (0 = time based)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid log level: %v", err)
	}
	log.SetLevel(level)

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg types.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	sprite, err := asset.LoadSprite(cfg.SpritePath, cfg.CellSize)
	if err != nil {
		return err
	}

	layout := cfg.Layout()
	size := int32(layout.WindowSize())
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(size, size, "Retro Snake")
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("window could not be created")
	}
	rl.SetTargetFPS(int32(cfg.FPS))

	var audio audioPlayer = sound.Silent{}
	if !cfg.Mute {
		player, err := sound.Open(cfg.MusicPath, cfg.EatSoundPath, cfg.CollisionSoundPath)
		if err != nil {
			return fmt.Errorf("audio: %w", err)
		}
		audio = player
	}
	defer audio.Close()

	renderer, err := ui.NewRenderer(layout, sprite)
	if err != nil {
		return err
	}
	defer renderer.Close()

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	log.WithField("seed", cfg.Seed).Debug("seeding food placement")
	rng := rand.New(rand.NewSource(cfg.Seed))

	g, err := game.NewGame(cfg.Grid(), rng, audio, log.StandardLogger())
	if err != nil {
		return err
	}

	timer := clock.NewTimer(cfg.TickInterval)
	timer.Restart(rl.GetTime())

	for !rl.WindowShouldClose() {
		audio.Update()

		if timer.Triggered(rl.GetTime()) {
			g.Update()
		}
		for _, dir := range ui.PressedDirections() {
			g.Steer(dir)
		}

		renderer.Draw(g, rl.GetFrameTime())
	}

	log.WithFields(log.Fields{
		"rounds": g.Rounds(),
		"best":   g.HighScore(),
	}).Info("window closed")
	return nil
}
