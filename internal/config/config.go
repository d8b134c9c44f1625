// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML files decoded with yaml.v3 (JSON is valid YAML and also accepted)

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that decodes from "90s"-style strings or a
// bare number of seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: timeout must be a scalar", node.Line)
	}
	if secs, err := strconv.ParseFloat(node.Value, 64); err == nil {
		*d = Duration(secs * float64(time.Second))
		return nil
	}
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid timeout %q: %w", node.Line, node.Value, err)
	}
	*d = Duration(v)
	return nil
}

// Settings holds the merged configuration.
type Settings struct {
	Provider   string            `yaml:"provider,omitempty"`
	Model      string            `yaml:"model,omitempty"`
	ImageModel string            `yaml:"image_model,omitempty"`
	BaseURL    string            `yaml:"base_url,omitempty"`
	Timeout    Duration          `yaml:"timeout,omitempty"`
	MaxTokens  int               `yaml:"max_tokens,omitempty"`
	OutputDir  string            `yaml:"output_dir,omitempty"`
	Env        map[string]string `yaml:"env,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings. ${VAR} references are expanded.
func Load(projectRoot string) (*Settings, error) {
	return loadPaths(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

func loadPaths(globalPath, projectPath string) (*Settings, error) {
	global, err := loadFile(globalPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(projectPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings together
// with the error if the file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values; env maps are merged.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	result.Env = maps.Clone(global.Env)

	if project.Provider != "" {
		result.Provider = project.Provider
	}
	if project.Model != "" {
		result.Model = project.Model
	}
	if project.ImageModel != "" {
		result.ImageModel = project.ImageModel
	}
	if project.BaseURL != "" {
		result.BaseURL = project.BaseURL
	}
	if project.Timeout != 0 {
		result.Timeout = project.Timeout
	}
	if project.MaxTokens != 0 {
		result.MaxTokens = project.MaxTokens
	}
	if project.OutputDir != "" {
		result.OutputDir = project.OutputDir
	}

	if len(project.Env) > 0 {
		if result.Env == nil {
			result.Env = make(map[string]string, len(project.Env))
		}
		maps.Copy(result.Env, project.Env)
	}

	return &result
}

// ApplyEnv exports the env section into the process environment.
// Variables already set are left alone.
func (s *Settings) ApplyEnv() {
	for k, v := range s.Env {
		if _, ok := os.LookupEnv(k); !ok {
			_ = os.Setenv(k, v)
		}
	}
}
