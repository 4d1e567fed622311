package catalog

import (
	"errors"
	"fmt"
	"log/slog"

	vending "github.com/Azure/go-vending"
	"github.com/Azure/go-vending/flcore"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrParsingConfig = errors.New("failed to parse vending config")

// Config is read from the environment, a .env file in the working directory is loaded first if present.
//
//	VENDING_CATALOG=./catalog.yaml
//	VENDING_STRICT=true
//	VENDING_LOG_LEVEL=debug
type Config struct {
	CatalogFile string `env:"VENDING_CATALOG" envDefault:"catalog.yaml"`
	Strict      bool   `env:"VENDING_STRICT" envDefault:"false"` // reject unvendable or odd prices on load
	LogLevel    string `env:"VENDING_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig parses Config from the environment, after loading the given .env files.
// Missing .env files are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load(envFiles...)
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level { return flcore.ParseLevel(c.LogLevel) }

// Load reads the catalog file named by the config, and validates it in strict mode.
func (c Config) Load() (Catalog, error) {
	cat, err := LoadFile(c.CatalogFile)
	if err != nil {
		return nil, err
	}
	if c.Strict {
		if err := cat.Validate(vending.MaxBalance); err != nil {
			return nil, fmt.Errorf("invalid catalog %s: %w", c.CatalogFile, err)
		}
	}
	return cat, nil
}
