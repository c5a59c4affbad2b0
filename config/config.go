package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

const configFileEnvName = "CHECKOUT_CONFIG_FILE"

type shipping struct {
	RatePerKg float64 `mapstructure:"rate_per_kg"`
}

type Config struct {
	LogLevel slog.Level `mapstructure:"log_level"`
	Currency string     `mapstructure:"currency"`
	Shipping shipping   `mapstructure:"shipping"`
}

// Load reads the config file named by the --config flag or the
// CHECKOUT_CONFIG_FILE env. A missing file is fine: the simulator
// runs on defaults.
func Load() Config {
	viper.SetDefault("log_level", int(slog.LevelInfo))
	viper.SetDefault("currency", "USD")
	viper.SetDefault("shipping.rate_per_kg", 10.0)

	path := getConfigFilepath()
	if _, err := os.Stat(path); err == nil {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			die(err)
		}
	}

	var cfg Config
	if err := viper.UnmarshalExact(&cfg); err != nil {
		die(err)
	}
	if err := cfg.validate(); err != nil {
		die(err)
	}

	return cfg
}

func (c Config) validate() error {
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("currency: %w", err)
	}
	if c.Shipping.RatePerKg < 0 {
		return fmt.Errorf("shipping.rate_per_kg is negative")
	}
	return nil
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	Currency=%q

	Shipping:
	RatePerKg=%v

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.Currency,
		c.Shipping.RatePerKg,
	)
}
