// Package loader reads workspace lane data from the .workspace directory.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kestrelworks/laneview/pkg/model"
)

// LanesFileName is the workspace-relative path of the lanes file.
const LanesFileName = ".workspace/lanes.yaml"

// lanesFile mirrors the on-disk document.
type lanesFile struct {
	Main      *model.Lane       `yaml:"main"`
	Selected  string            `yaml:"selected"`
	Lanes     []model.Lane      `yaml:"lanes"`
	Component *model.Component  `yaml:"component"`
	Icons     map[string]string `yaml:"icons"`
}

// Result is a loaded workspace plus the optional presentation extras
// the lanes file may carry.
type Result struct {
	Workspace model.Workspace
	Component *model.Component
	Icons     map[string]string
}

// Load reads lanes from the .workspace/lanes.yaml file under the given
// workspace path. An empty path means the current working directory.
func Load(workspacePath string) (Result, error) {
	if workspacePath == "" {
		var err error
		workspacePath, err = os.Getwd()
		if err != nil {
			return Result{}, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}
	return LoadFromFile(filepath.Join(workspacePath, LanesFileName))
}

// LoadFromFile reads lanes directly from a specific YAML file path.
// Lane order in the file is preserved; the selector's substring
// fallback searches that original order.
func LoadFromFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Result{}, fmt.Errorf("no workspace lanes found at %s", path)
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to read lanes file: %w", err)
	}

	var file lanesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Result{}, fmt.Errorf("failed to parse lanes file %s: %w", path, err)
	}

	ws := model.Workspace{
		Main:     file.Main,
		Selected: file.Selected,
	}
	if ws.Main != nil && ws.Main.Validate() != nil {
		ws.Main = nil
	}

	// Skip malformed and duplicate entries but keep loading the rest;
	// identifiers must stay unique within the list.
	seen := make(map[model.LaneID]bool)
	if ws.Main != nil {
		seen[ws.Main.ID] = true
	}
	for _, lane := range file.Lanes {
		if lane.Validate() != nil || seen[lane.ID] {
			continue
		}
		seen[lane.ID] = true
		ws.Lanes = append(ws.Lanes, lane)
	}

	return Result{
		Workspace: ws,
		Component: file.Component,
		Icons:     file.Icons,
	}, nil
}
