package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultFileName         = ".env"
	defaultOverrideFileName = ".local.env"
)

type logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// EnvLoader serves values from the process environment after merging in
// dotenv files. Variables already present in the environment win.
type EnvLoader struct {
	logger logger
}

// NewEnvFile loads folder/.env then folder/.local.env and returns a Config
// backed by the resulting environment.
func NewEnvFile(folder string, logger logger) Config {
	conf := &EnvLoader{logger: logger}
	conf.read(folder)

	return conf
}

func (e *EnvLoader) read(folder string) {
	initialEnv := make(map[string]bool)
	for _, envVar := range os.Environ() {
		key, _, _ := strings.Cut(envVar, "=")
		initialEnv[key] = true
	}

	envMap := make(map[string]string)
	for _, name := range []string{defaultFileName, defaultOverrideFileName} {
		file := filepath.Join(folder, name)

		values, err := godotenv.Read(file)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				e.logger.Warnf("failed to load config from file: %v, Err: %v", file, err)
			}
			continue
		}

		e.logger.Debugf("loaded config from file: %v", file)
		for k, v := range values {
			envMap[k] = v
		}
	}

	for k, v := range envMap {
		if initialEnv[k] {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			e.logger.Warnf("failed to set %s from env file: %v", k, err)
		}
	}
}

func (*EnvLoader) Get(key string) string {
	return os.Getenv(key)
}

func (*EnvLoader) GetOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return defaultValue
}
