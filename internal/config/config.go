package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// AutoPlayRoundLimit caps unattended games, some deals cycle forever.
const AutoPlayRoundLimit = 10000

// Config holds the application configuration
type Config struct {
	// Names shown for both sides
	PlayerName   string
	ComputerName string

	// Shuffle seed, 0 seeds from the clock
	Seed int64

	// Stop after this many rounds, 0 plays to the end
	MaxRounds int

	// Never prompt between rounds
	AutoPlay bool

	// "text" or "json"
	Output string

	// Colour suit symbols in text output
	Color bool

	// Write diagnostics to stderr
	Verbose bool

	// Write diagnostics to this file instead
	LogFile string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		PlayerName:   "Player",
		ComputerName: "Computer",
		Seed:         0,
		MaxRounds:    0,
		AutoPlay:     false,
		Output:       OutputText,
		Color:        true,
		Verbose:      false,
		LogFile:      "",
	}
}

// Load builds the configuration from defaults, an optional .env file, WAR_* environment
// variables and finally command line flags.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("WAR_PLAYER_NAME"); ok && v != "" {
		c.PlayerName = v
	}
	if v, ok := lookup("WAR_COMPUTER_NAME"); ok && v != "" {
		c.ComputerName = v
	}
	if v, ok := lookup("WAR_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid WAR_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup("WAR_MAX_ROUNDS"); ok && v != "" {
		rounds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid WAR_MAX_ROUNDS %q: %w", v, err)
		}
		c.MaxRounds = rounds
	}
	if v, ok := lookup("WAR_AUTO_PLAY"); ok && v != "" {
		auto, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid WAR_AUTO_PLAY %q: %w", v, err)
		}
		c.AutoPlay = auto
	}
	if v, ok := lookup("WAR_OUTPUT"); ok && v != "" {
		c.Output = strings.ToLower(v)
	}
	if v, ok := lookup("WAR_NO_COLOR"); ok && v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid WAR_NO_COLOR %q: %w", v, err)
		}
		c.Color = !noColor
	}
	if v, ok := lookup("WAR_VERBOSE"); ok && v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid WAR_VERBOSE %q: %w", v, err)
		}
		c.Verbose = verbose
	}
	if v, ok := lookup("WAR_LOG_FILE"); ok {
		c.LogFile = v
	}
	return nil
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("war", flag.ContinueOnError)
	fs.StringVar(&c.PlayerName, "name", c.PlayerName, "Your name")
	fs.StringVar(&c.ComputerName, "computer-name", c.ComputerName, "Name of the computer opponent")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed (0 = use current time)")
	fs.IntVar(&c.MaxRounds, "max-rounds", c.MaxRounds, "Stop after N rounds, the bigger deck wins (0 = unlimited)")
	fs.BoolVar(&c.AutoPlay, "auto", c.AutoPlay, "Play every round without prompting")
	fs.StringVar(&c.Output, "output", c.Output, "Output format (text, json)")
	fs.BoolVar(&c.Color, "color", c.Color, "Colour suit symbols")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "Enable verbose logging")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file")
	return fs.Parse(args)
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max rounds must not be negative, got %d", c.MaxRounds)
	}
	if strings.TrimSpace(c.PlayerName) == "" {
		return errors.New("player name must not be empty")
	}
	return nil
}

// RoundLimit returns the round cap for the game. Auto-play without an explicit
// limit gets AutoPlayRoundLimit.
func (c *Config) RoundLimit() int {
	if c.AutoPlay && c.MaxRounds == 0 {
		return AutoPlayRoundLimit
	}
	return c.MaxRounds
}

// IsJSON returns true if events are written as JSON lines
func (c *Config) IsJSON() bool {
	return c.Output == OutputJSON
}
