package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const configFile = "config.yaml"

// Config holds the node configuration.
type Config struct {
	ChainID string     `mapstructure:"chain_id"`
	Debug   bool       `mapstructure:"debug"`
	ABCI    ABCIConfig `mapstructure:"abci"`
	DB      DBConfig   `mapstructure:"db"`
	Log     LogConfig  `mapstructure:"log"`
}

type ABCIConfig struct {
	Address string `mapstructure:"address"`
}

type DBConfig struct {
	Backend string `mapstructure:"backend"` // memdb, goleveldb
	Dir     string `mapstructure:"dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, error, none
}

func newViper(home string) *viper.Viper {
	v := viper.New()

	v.SetDefault("chain_id", "")
	v.SetDefault("debug", false)
	v.SetDefault("abci.address", "tcp://localhost:26658")
	v.SetDefault("db.backend", "goleveldb")
	v.SetDefault("db.dir", "data")
	v.SetDefault("log.level", "info")

	v.SetConfigFile(filepath.Join(home, configFile))

	// SWAPD_DB_BACKEND -> db.backend
	v.SetEnvPrefix("SWAPD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the configuration from the home directory. The file is
// optional, environment variables override whatever it declares. A relative
// database directory is resolved against home.
func LoadConfig(home string) (*Config, error) {
	v := newViper(home)
	if err := v.ReadInConfig(); err != nil && !missingConfig(err) {
		return nil, fmt.Errorf("cannot read config file: %s", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot unmarshal config: %s", err)
	}
	if !filepath.IsAbs(cfg.DB.Dir) {
		cfg.DB.Dir = filepath.Join(home, cfg.DB.Dir)
	}
	return &cfg, nil
}

// WriteConfig stores the default configuration with given chain ID in the
// home directory.
func WriteConfig(home, chainID string) (string, error) {
	v := newViper(home)
	v.Set("chain_id", chainID)
	path := filepath.Join(home, configFile)
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("cannot write config file: %s", err)
	}
	return path, nil
}

// missingConfig returns true if the error is caused by the absence of the
// configuration file. An explicitly set file that does not exist is reported
// by the os and not by viper.
func missingConfig(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return os.IsNotExist(err)
}
