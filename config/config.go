package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	logPrefix = "config"

	DefaultNameProperty = "lad19nm"
)

// Dataset - one versioned source of area boundaries
type Dataset struct {
	ID           string  `mapstructure:"id"`
	Src          string  `mapstructure:"src"`
	Version      string  `mapstructure:"version"`
	Priority     float64 `mapstructure:"priority"`
	Type         string  `mapstructure:"type"`
	NameProperty string  `mapstructure:"name_property"`
}

type Config struct {
	Host         string    `mapstructure:"host"`
	Database     string    `mapstructure:"database"`
	DryRun       bool      `mapstructure:"dry_run"`
	VersionCheck bool      `mapstructure:"version_check"`
	Index        bool      `mapstructure:"index"`
	LogLevel     string    `mapstructure:"log_level"`
	Datasets     []Dataset `mapstructure:"datasets"`
}

// MongoURI - connection string of the configured database
func (c Config) MongoURI() string {
	return fmt.Sprintf("mongodb://%s/%s", c.Host, c.Database)
}

// LoadEnv - read .env files into the process environment, existing variables win
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Load - read config from file, environment and flags, flags taking precedence
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// every key needs a default so that Unmarshal sees values only set in env
	v.SetDefault("host", "localhost:27017")
	v.SetDefault("database", "")
	v.SetDefault("dry_run", false)
	v.SetDefault("index", false)
	v.SetDefault("version_check", true)
	v.SetDefault("log_level", "info")

	if file != "" {
		if _, err := os.Stat(file); err == nil {
			v.SetConfigFile(file)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file %s: %w", file, err)
			}
			log.WithField("prefix", logPrefix).Infof("read config from %s", v.ConfigFileUsed())
		} else {
			log.WithField("prefix", logPrefix).Info("No config file. Read config from env.")
		}
	}

	// connection settings of the config file win over the environment, which
	// only fills what the file leaves out
	fromFile := make(map[string]string)
	for _, key := range []string{"host", "database"} {
		if v.InConfig(key) {
			fromFile[key] = v.GetString(key)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for key, name := range map[string]string{
			"host":     "host",
			"database": "database",
			"dry_run":  "dry-run",
			"index":    "index",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if value, ok := fromFile["host"]; ok && !changed(flags, "host") {
		c.Host = value
	}
	if value, ok := fromFile["database"]; ok && !changed(flags, "database") {
		c.Database = value
	}

	if changed(flags, "no-version-check") {
		c.VersionCheck = false
	}

	// relative dataset paths are resolved against the config file
	base := ""
	if v.ConfigFileUsed() != "" {
		base = filepath.Dir(v.ConfigFileUsed())
	}
	for i := range c.Datasets {
		if c.Datasets[i].NameProperty == "" {
			c.Datasets[i].NameProperty = DefaultNameProperty
		}
		if base != "" && c.Datasets[i].Src != "" && !filepath.IsAbs(c.Datasets[i].Src) {
			c.Datasets[i].Src = filepath.Join(base, c.Datasets[i].Src)
		}
	}

	return &c, nil
}

func changed(flags *pflag.FlagSet, name string) bool {
	if flags == nil {
		return false
	}
	f := flags.Lookup(name)
	return f != nil && f.Changed
}
