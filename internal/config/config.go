package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"SeasonScope/internal/scan"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	DataSource struct {
		Source string `yaml:"source"` // "yahoo" or "stooq"
	} `yaml:"data_source"`
	Scan struct {
		AssetClass    string `yaml:"asset_class"`
		TickersFile   string `yaml:"tickers_file"`
		Cron          string `yaml:"cron"`
		LookbackYears []int  `yaml:"lookback_years"`
		ForwardMonths []int  `yaml:"forward_months"`
	} `yaml:"scan"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment
// variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		cfg.DataSource.Source = v
	}
	if v := os.Getenv("TICKERS_FILE"); v != "" {
		cfg.Scan.TickersFile = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.DataSource.Source == "" {
		cfg.DataSource.Source = "yahoo"
	}
	if cfg.Scan.AssetClass == "" {
		cfg.Scan.AssetClass = "stocks"
	}
	if cfg.Scan.TickersFile == "" {
		cfg.Scan.TickersFile = "configs/tickers.txt"
	}
	if cfg.Scan.Cron == "" {
		// Weekdays after the US close.
		cfg.Scan.Cron = "0 30 22 * * 1-5"
	}
	if len(cfg.Scan.LookbackYears) == 0 {
		cfg.Scan.LookbackYears = scan.DefaultGrid.LookbackYears
	}
	if len(cfg.Scan.ForwardMonths) == 0 {
		cfg.Scan.ForwardMonths = scan.DefaultGrid.ForwardMonths
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/seasonscope.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.DataSource.Source != "yahoo" && c.DataSource.Source != "stooq" {
		return fmt.Errorf("data_source.source must be yahoo or stooq, got %q", c.DataSource.Source)
	}
	for _, lb := range c.Scan.LookbackYears {
		if lb <= 0 {
			return fmt.Errorf("scan.lookback_years must be positive, got %d", lb)
		}
	}
	for _, fw := range c.Scan.ForwardMonths {
		if fw <= 0 {
			return fmt.Errorf("scan.forward_months must be positive, got %d", fw)
		}
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
