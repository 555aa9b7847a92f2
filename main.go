package main

import (
	"flag"
	"os"

	"knightmaze/audio"
	"knightmaze/config"
	"knightmaze/engine"
	"knightmaze/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("loading config")
	}
	logFile := cfg.Log.File
	if logFile == "" && cfg.Display.Backend == "terminal" {
		// stderr would scribble over the tcell screen
		logFile = "knightmaze.log"
	}
	out := os.Stderr
	if logFile != "" {
		out, err = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Log.WithError(err).Fatal("opening log file")
		}
		defer out.Close()
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format, out)

	tex := engine.NewTextureManager()
	tex.LoadDir(cfg.Textures.Dir, cfg.Textures.TextureFiles())

	sound := audio.Open(audio.Options{
		Enabled:    cfg.Audio.Enabled,
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.Audio.Volume,
		Files: map[string]string{
			audio.Music:   cfg.Audio.Music,
			audio.Goblin:  cfg.Audio.Goblin,
			audio.Victory: cfg.Audio.Victory,
		},
	})
	defer sound.Close()

	game, err := NewGame(cfg, tex, sound)
	if err != nil {
		logger.Log.WithError(err).Fatal("initializing game")
	}

	run := runWindow
	if cfg.Display.Backend == "terminal" {
		run = runTerminal
	}
	if err := run(game); err != nil {
		logger.Log.WithError(err).Fatal("game stopped")
	}
}
