package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	ModeConsole = "console"
	ModeServer  = "server"

	FirstTurnAsk = "ask"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string `yaml:"mode" env:"MODE" env-default:"console"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Game     Game   `yaml:"game"`
	Redis    Redis  `yaml:"redis"`
}

type Game struct {
	ComputerMark  string `yaml:"computer-mark" env:"COMPUTER_MARK" env-default:"X"`
	HumanMark     string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"O"`
	FirstTurn     string `yaml:"first-turn" env:"FIRST_TURN" env-default:"ask"`
	RandomOpening bool   `yaml:"random-opening" env:"RANDOM_OPENING" env-default:"false"`
	ClearScreen   bool   `yaml:"clear-screen" env:"CLEAR_SCREEN" env-default:"false"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yaml file at path, then applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Marks - the validated player marks.
func (that *Game) Marks() (entity.Marks, error) {
	marks, err := entity.NewMarks(that.ComputerMark, that.HumanMark)
	if err != nil {
		return entity.Marks{}, fmt.Errorf("bad game marks: %w", err)
	}

	return marks, nil
}

// FixedFirstTurn - the configured starting side; ok is false when the player should be asked.
func (that *Game) FixedFirstTurn() (entity.Side, bool, error) {
	if that.FirstTurn == FirstTurnAsk {
		return "", false, nil
	}

	side, err := entity.ParseSide(that.FirstTurn)
	if err != nil {
		return "", false, fmt.Errorf("bad first-turn: %w", err)
	}

	return side, true, nil
}
