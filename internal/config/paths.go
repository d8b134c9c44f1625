// ABOUTME: Standard filesystem paths for mindweaver configuration, credentials, and logs
// ABOUTME: Resolves ~/.mindweaver/ for global and .mindweaver/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".mindweaver"
	projectDirName = ".mindweaver"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.mindweaver/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// AuthFile returns the path to the auth credentials file.
func AuthFile() string {
	return filepath.Join(GlobalDir(), "auth.json")
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// LogFile returns the interactive-mode log file path.
func LogFile() string {
	return filepath.Join(GlobalDir(), "mindweaver.log")
}

// DotEnvFile returns the project .env path.
func DotEnvFile(projectRoot string) string {
	return filepath.Join(projectRoot, ".env")
}

// EnsureDir creates a directory and all parents if they don't exist.
// Uses 0o700 since the global directory holds credentials.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
