package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load decodes a YAML or TOML config file, chosen by extension. Unknown keys are rejected.
func Load(path string) (File, error) {
	var f File

	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return f, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return f, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return f, fmt.Errorf("unsupported config extension: %s", ext)
	}

	return f, nil
}
