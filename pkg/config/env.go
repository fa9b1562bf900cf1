package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// ApplyEnv overlays TAGCLOUD_* environment variables onto c. A .env file in
// the working directory is loaded first when present, matching how the IPC
// server is usually deployed. Environment values win over file values.
func (c *Config) ApplyEnv() {
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded environment overrides from .env")
	}
	if v, ok := envInt("TAGCLOUD_DEFAULT_COUNT"); ok {
		c.Cloud.DefaultCount = v
	}
	if v, ok := envString("TAGCLOUD_SEPARATORS"); ok {
		c.Cloud.Separators = v
	}
	if v, ok := envInt("TAGCLOUD_MIN_FONT"); ok {
		c.Render.MinFont = v
	}
	if v, ok := envInt("TAGCLOUD_MAX_FONT"); ok {
		c.Render.MaxFont = v
	}
	if v, ok := envString("TAGCLOUD_STYLESHEET"); ok {
		c.Render.Stylesheet = v
	}
	if v, ok := envBool("TAGCLOUD_ESCAPE_WORDS"); ok {
		c.Render.EscapeWords = v
	}
	if v, ok := envInt("TAGCLOUD_MAX_COUNT"); ok {
		c.Server.MaxCount = v
	}
	if v, ok := envInt("TAGCLOUD_MAX_TEXT_BYTES"); ok {
		c.Server.MaxTextBytes = v
	}
}

func envString(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("ignoring %s=%q: not an integer", key, v)
		return 0, false
	}
	return n, true
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("ignoring %s=%q: not a boolean", key, v)
		return false, false
	}
	return b, true
}
