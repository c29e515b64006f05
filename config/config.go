package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tablut/meta"
)

const (
	ConfigMode      = "mode"
	ConfigMoveLimit = "move-limit"
	ConfigAttackers = "attackers"
	ConfigDefenders = "defenders"
	ConfigDepth     = "depth"
	ConfigGames     = "games"
	ConfigSeed      = "seed"
	ConfigOutputDir = "output-dir"
	ConfigDebug     = "debug"
	ConfigFile      = "config"
)

var (
	ErrBadMode   = errors.New("unknown mode")
	ErrBadPlayer = errors.New("unknown player kind")
	ErrBadValue  = errors.New("bad value")
)

var playerKinds = []string{meta.PlayerAI, meta.PlayerManual, meta.PlayerRandom}

// Config layers command-line flags over TABLUT_* environment variables over
// an optional config file over the defaults in meta.
type Config struct {
	*viper.Viper
}

func New() *Config {
	return &Config{viper.New()}
}

func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("tablut", pflag.ContinueOnError)
	fs.String(ConfigMode, meta.ModePlay, "play a single game or run an experiment (play, experiment)")
	fs.Int(ConfigMoveLimit, meta.MOVE_LIMIT, "move pairs before the side to move wins; 0 disables the limit")
	fs.String(ConfigAttackers, meta.PlayerManual, "attacker player (ai, manual, random)")
	fs.String(ConfigDefenders, meta.PlayerAI, "defender player (ai, manual, random)")
	fs.Int(ConfigDepth, 0, "fixed search depth for ai players; 0 picks the depth from the move count")
	fs.Int(ConfigGames, meta.GAMES, "games per experiment match-up")
	fs.Uint64(ConfigSeed, meta.SEED, "seed for random players")
	fs.String(ConfigOutputDir, meta.OUTPUT_DIR, "directory for experiment results")
	fs.Bool(ConfigDebug, false, "debug logging")
	fs.String(ConfigFile, "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("tablut")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return c.validate()
}

func (c *Config) validate() error {
	switch mode := c.GetString(ConfigMode); mode {
	case meta.ModePlay, meta.ModeExperiment:
	default:
		return fmt.Errorf("%w: %q", ErrBadMode, mode)
	}
	for _, key := range []string{ConfigAttackers, ConfigDefenders} {
		if kind := c.GetString(key); !slices.Contains(playerKinds, kind) {
			return fmt.Errorf("%w: %s=%q", ErrBadPlayer, key, kind)
		}
	}
	for _, key := range []string{ConfigMoveLimit, ConfigDepth, ConfigGames} {
		if c.GetInt(key) < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrBadValue, key)
		}
	}
	return nil
}
