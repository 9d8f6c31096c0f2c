package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Config provides read access to configuration values.
type Config interface {
	Get(key string) string
	GetOrDefault(key, defaultValue string) string
}

// Environment keys recognized by the tool.
const (
	KeyTimeout   = "REDIRECTCHECK_TIMEOUT"
	KeyUserAgent = "REDIRECTCHECK_USER_AGENT"
	KeyProxy     = "REDIRECTCHECK_PROXY"
	KeyInsecure  = "REDIRECTCHECK_INSECURE"
	KeyColor     = "REDIRECTCHECK_COLOR"
	KeyLogLevel  = "REDIRECTCHECK_LOG_LEVEL"
)

// DefaultTimeoutSeconds is used when neither flag nor environment set a
// timeout. Zero means the request is never cut short.
const DefaultTimeoutSeconds = 0

var (
	ErrInvalidTimeout = errors.New("timeout must be a non-negative integer number of seconds")
	ErrInvalidBool    = errors.New("invalid boolean")
)

// Settings are the defaults the CLI starts from before flags are applied.
type Settings struct {
	TimeoutSeconds int
	UserAgent      string
	Proxy          string
	Insecure       bool
	Color          string
	LogLevel       string
}

// Load reads Settings from c, applying built-in defaults for unset keys.
func Load(c Config) (Settings, error) {
	s := Settings{
		UserAgent: c.Get(KeyUserAgent),
		Proxy:     c.Get(KeyProxy),
		Color:     c.GetOrDefault(KeyColor, "auto"),
		LogLevel:  c.GetOrDefault(KeyLogLevel, "WARN"),
	}

	timeout, err := ParseTimeout(c.GetOrDefault(KeyTimeout, strconv.Itoa(DefaultTimeoutSeconds)))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyTimeout, err)
	}
	s.TimeoutSeconds = timeout

	if v := c.Get(KeyInsecure); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w %q", KeyInsecure, ErrInvalidBool, v)
		}
		s.Insecure = b
	}
	return s, nil
}

// ParseTimeout parses a whole number of seconds.
func ParseTimeout(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidTimeout, v)
	}
	return n, nil
}
