package config

import (
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/nothke/Pool/pkg/errors"
)

// Load loads a configuration from a YAML or JSON file, selected by file
// extension. `${VAR_NAME}` references are substituted from the environment
// before parsing.
func Load(filePath string, config interface{}) error {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: File path is controlled by caller
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file").
			WithDetail("path", filePath)
	}

	content := substituteEnvVars(string(data))

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		if err := gojson.Unmarshal([]byte(content), config); err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse JSON config").
				WithDetail("path", filePath)
		}
	default:
		if err := yaml.Unmarshal([]byte(content), config); err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse YAML config").
				WithDetail("path", filePath)
		}
	}

	return nil
}

// Save saves a configuration to a YAML file.
func Save(filePath string, config interface{}) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to marshal YAML")
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to write config file").
			WithDetail("path", filePath)
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
