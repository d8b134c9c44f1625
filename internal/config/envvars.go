// ABOUTME: Environment handling: ${VAR} expansion in config fields and .env loading
// ABOUTME: .env files are read with godotenv; existing variables take precedence

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Provider = expandEnv(s.Provider)
	s.Model = expandEnv(s.Model)
	s.ImageModel = expandEnv(s.ImageModel)
	s.BaseURL = expandEnv(s.BaseURL)
	s.OutputDir = expandEnv(s.OutputDir)
	for k, v := range s.Env {
		s.Env[k] = expandEnv(v)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
