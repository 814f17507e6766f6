package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvPath = "./configs/.env"

type Config struct {
}

// New loads ./configs/.env once. A missing file is fine, the process environment is used as is.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("ENV_FILE")
		if path == "" {
			path = defaultEnvPath
		}
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) GetIntOr(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetDurationOr(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// Location resolves TIME_ZONE, falling back to UTC on empty or unknown names.
func (c *Config) Location() *time.Location {
	name := c.GetStringOr("TIME_ZONE", "UTC")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown TIME_ZONE %q, using UTC", name)
		return time.UTC
	}
	return loc
}
