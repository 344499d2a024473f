package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// readSnapshot loads a snapshot from a .json, .yaml or .yml file.
func readSnapshot(path string) (domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap domain.Snapshot
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &snap)
	default:
		err = json.Unmarshal(data, &snap)
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return snap, nil
}

// encodeSnapshot serializes a snapshot as indented JSON or YAML.
func encodeSnapshot(snap domain.Snapshot, format string) ([]byte, string, error) {
	switch format {
	case "yaml", "yml":
		data, err := yaml.Marshal(snap)
		return data, ".yaml", err
	case "", "json":
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, "", err
		}
		return append(data, '\n'), ".json", nil
	}
	return nil, "", fmt.Errorf("unknown output format %q (want json or yaml)", format)
}
