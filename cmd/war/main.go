package main

import (
	"io"
	"log"
	"os"

	"war-game/internal/config"
	"war-game/internal/console"
	"war-game/internal/game"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	closeLog := setupLogging(cfg)
	defer closeLog()
	log.Println("Starting War...")

	var sender game.MessageSender
	promptOut := io.Writer(os.Stdout)
	if cfg.IsJSON() {
		sender = console.NewJSONRenderer(os.Stdout).Send
		promptOut = os.Stderr
	} else {
		sender = console.NewRenderer(os.Stdout, cfg.Color).Send
	}

	g, err := game.NewGame(game.Options{
		PlayerName:   cfg.PlayerName,
		ComputerName: cfg.ComputerName,
		Seed:         cfg.Seed,
		MaxRounds:    cfg.RoundLimit(),
	}, sender)
	if err != nil {
		log.Fatalf("Error creating game: %v", err)
	}

	var input game.InputSource = console.NewPrompter(os.Stdin, promptOut)
	if cfg.AutoPlay {
		input = console.AutoPlay{}
	}

	result := g.Run(input)
	if result.Winner != nil {
		log.Printf("Game %s finished: %s won in %d rounds with %d wars.", g.ID, result.Winner.Name, result.Rounds, result.Wars)
	}
}

// setupLogging keeps diagnostics out of the game text unless asked for.
func setupLogging(cfg *config.Config) func() {
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("Error opening log file: %v", err)
		}
		log.SetOutput(f)
		return func() { f.Close() }
	case cfg.Verbose:
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}
	return func() {}
}
