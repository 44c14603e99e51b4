package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"chasse/internal/assets"
	"chasse/internal/config"
	"chasse/internal/gamemode"
	"chasse/internal/render"
	"chasse/internal/sound"
	"chasse/internal/synth"
)

func main() {
	configPath := flag.String("config", "chasse.toml", "TOML config file")
	envPath := flag.String("env", ".env", "dotenv file")
	difficulty := flag.String("difficulty", "", "start directly at this difficulty")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		log.Fatal(err)
	}
	if *difficulty != "" {
		cfg.Difficulty = *difficulty
	}

	// 1. Window Setup
	ebiten.SetWindowSize(int(gamemode.ScreenWidth*cfg.Window.Scale), int(gamemode.ScreenHeight*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Window.TPS)

	// 2. Collaborators
	logger := log.Default()
	loader := assets.NewLoader(assets.Dir(cfg.Assets.Dir), logger)
	defer loader.Close()

	var ctx *audio.Context
	if cfg.Audio.Enabled {
		ctx = audio.NewContext(int(synth.SampleRate))
	}
	mixer := sound.NewMixer(ctx, loader, cfg.Audio.Volume, logger)
	defer mixer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := gamemode.NewSession(
		gamemode.WithRand(rand.New(rand.NewSource(seed))),
		gamemode.WithAudio(mixer),
		gamemode.WithLogger(logger),
	)
	session.Start()
	if cfg.Difficulty != "" {
		session.Select(cfg.Difficulty)
	}

	renderer := render.New(loader, render.Fonts{
		Title: cfg.Fonts.Title,
		Stat:  cfg.Fonts.Stat,
		Label: cfg.Fonts.Label,
	})
	defer renderer.Deallocate()

	// 3. Run Loop
	if err := ebiten.RunGame(NewGame(session, renderer)); err != nil {
		log.Fatal(err)
	}
}
