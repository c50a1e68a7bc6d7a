package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// LoadProduction reads a scene breakdown and cast/crew directory from a YAML or
// JSON file. Unknown keys are rejected so that misspelt fields do not silently
// drop data. Scene validation happens later, in the engine.
func LoadProduction(path string, logger *zap.Logger) (*model.Production, error) {
	logger.Debug("Loading production", zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read production file: %w", err)
	}

	production, err := ParseProduction(data)
	if err != nil {
		return nil, err
	}

	logger.Debug("Production loaded",
		zap.String("title", production.Title),
		zap.Int("scenes", len(production.Scenes)),
		zap.Int("people", len(production.People)))

	return production, nil
}

// ParseProduction decodes a production document
func ParseProduction(data []byte) (*model.Production, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var production model.Production
	if err := decoder.Decode(&production); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("production file is empty")
		}
		return nil, fmt.Errorf("failed to parse production file: %w", err)
	}

	return &production, nil
}
