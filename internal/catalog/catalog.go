// Package catalog reads operator-defined extra steps from a YAML file.
//
// The built-in step catalog covers a fixed set of tools; the catalog file
// (typically ~/.config/ubuntu-setup/steps.yaml) lets the operator append
// their own steps without rebuilding the tool. Entries run through the same
// engine as built-in steps: same confirmation, same gate, same failure
// isolation.
//
// YAML format:
//
//	steps:
//	  - id: tailscale
//	    prompt: Install Tailscale
//	    command: curl -fsSL https://tailscale.com/install.sh | sh
//	    profile:
//	      name: tailscale
//	      lines:
//	        - alias ts='tailscale'
//
// Entries are ordered; they execute after the built-in catalog in file
// order. The profile section is optional and appends a marker-guarded block
// after the command succeeds.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry represents a single operator-defined step.
type Entry struct {
	// ID is the step id. Must be unique across built-in and custom steps.
	ID string `yaml:"id"`

	// Prompt is the question shown when collecting the selection.
	// Defaults to "Install <id>" when empty.
	Prompt string `yaml:"prompt"`

	// Command is the shell command to execute.
	Command string `yaml:"command"`

	// Profile optionally appends a profile block after the command succeeds.
	Profile *ProfileBlock `yaml:"profile"`
}

// ProfileBlock describes a marker-guarded shell-profile addition.
type ProfileBlock struct {
	// Name is the marker name. Defaults to the entry id when empty.
	Name string `yaml:"name"`

	// Lines are the profile lines appended under the marker.
	Lines []string `yaml:"lines"`
}

// file is the top-level YAML document.
type file struct {
	Steps []Entry `yaml:"steps"`
}

// Load reads and validates the catalog file at path.
//
// A missing file is not an error; it returns an empty catalog so the
// default path can simply not exist.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read step catalog: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates catalog YAML.
func Parse(data []byte) ([]Entry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse step catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Steps))
	for i := range f.Steps {
		e := &f.Steps[i]
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("step catalog entry %d: %w", i+1, err)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("step catalog entry %d: duplicate id %q", i+1, e.ID)
		}
		seen[e.ID] = struct{}{}
		e.applyDefaults()
	}
	return f.Steps, nil
}

func (e *Entry) validate() error {
	if e.ID == "" {
		return fmt.Errorf("missing id")
	}
	if e.Command == "" && (e.Profile == nil || len(e.Profile.Lines) == 0) {
		return fmt.Errorf("step %q has neither a command nor profile lines", e.ID)
	}
	return nil
}

func (e *Entry) applyDefaults() {
	if e.Prompt == "" {
		e.Prompt = fmt.Sprintf("Install %s", e.ID)
	}
	if e.Profile != nil && e.Profile.Name == "" {
		e.Profile.Name = e.ID
	}
}
