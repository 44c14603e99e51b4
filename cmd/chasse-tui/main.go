// Command chasse-tui plays Chasse Express in a terminal with mouse support.
package main

import (
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"chasse/internal/assets"
	"chasse/internal/config"
	"chasse/internal/gamemode"
	"chasse/internal/tui"
)

func main() {
	configPath := flag.String("config", "chasse.toml", "TOML config file")
	envPath := flag.String("env", ".env", "dotenv file")
	difficulty := flag.String("difficulty", "", "start directly at this difficulty")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		log.Fatal(err)
	}
	if *difficulty != "" {
		cfg.Difficulty = *difficulty
	}

	// The terminal belongs to the game; logs go to a file or nowhere.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	loader := assets.NewLoader(assets.Dir(cfg.Assets.Dir), logger)
	defer loader.Close()

	opts := []gamemode.Option{gamemode.WithLogger(logger)}
	if cfg.Audio.Enabled {
		spk, err := tui.NewSpeaker(loader, cfg.Audio.Volume, logger)
		if err != nil {
			// Non-fatal, the game runs silent
			logger.Printf("audio: %v", err)
		} else {
			defer spk.Close()
			opts = append(opts, gamemode.WithAudio(spk))
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts = append(opts, gamemode.WithRand(rand.New(rand.NewSource(seed))))

	session := gamemode.NewSession(opts...)
	if cfg.Difficulty != "" {
		session.Select(cfg.Difficulty)
	}

	if err := tui.Run(screen, session, cfg.Window.TPS); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}
