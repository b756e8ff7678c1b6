package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config 本地服务的启动配置，来自环境变量，命令行参数可覆盖
type Config struct {
	Addr        string `env:"DRAUGHTS_ADDR"         envDefault:":2888"`
	WebDir      string `env:"DRAUGHTS_WEB_DIR"      envDefault:"./web"`
	MoveLimit   int    `env:"DRAUGHTS_MOVE_LIMIT"   envDefault:"1000"`
	Strategy    string `env:"DRAUGHTS_STRATEGY"     envDefault:"random"`
	OpenBrowser bool   `env:"DRAUGHTS_OPEN_BROWSER" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load 读取环境变量并检查取值
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MoveLimit <= 0 {
		return Config{}, fmt.Errorf("DRAUGHTS_MOVE_LIMIT must be positive, got %d", cfg.MoveLimit)
	}
	return cfg, nil
}
