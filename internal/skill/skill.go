// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package skill loads skill manifests from a directory of YAML files.
// Each manifest describes one skill: its name, what it does, the
// subcommand that runs it, and usage examples an assistant can copy.
package skill

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Manifest is the metadata file accompanying a skill.
type Manifest struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Command     string   `yaml:"command" json:"command"`
	Examples    []string `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// Load reads all .yaml/.yml manifests in dir, sorted by name. A missing
// directory is not an error; Load returns an empty slice. Unparseable
// files produce a warning on w but do not abort.
func Load(dir string, w io.Writer) ([]Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading skills directory %s: %w", dir, err)
	}

	var manifests []Manifest
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(w, "warning: could not read skill manifest %s: %v\n", name, err)
			continue
		}

		var m Manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			fmt.Fprintf(w, "warning: could not parse skill manifest %s: %v\n", name, err)
			continue
		}
		if strings.TrimSpace(m.Name) == "" {
			m.Name = strings.TrimSuffix(name, ext)
		}
		manifests = append(manifests, m)
	}

	sort.Slice(manifests, func(i, j int) bool { return manifests[i].Name < manifests[j].Name })
	return manifests, nil
}

// FormatTable writes manifests as a human-readable table to w.
func FormatTable(manifests []Manifest, w io.Writer) {
	if len(manifests) == 0 {
		fmt.Fprintln(w, "No skills found.")
		return
	}

	fmt.Fprintf(w, "%-20s  %-18s  %s\n", "Skill", "Command", "Description")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, m := range manifests {
		fmt.Fprintf(w, "%-20s  %-18s  %s\n", m.Name, m.Command, m.Description)
	}
	fmt.Fprintf(w, "\n%d skill(s)\n", len(manifests))
}
