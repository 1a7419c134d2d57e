// Package config loads the translator configuration from hs2v.yaml.
//
// A configuration seeds the renaming table with project-specific
// correspondences, selects the failure policy for value bindings, and
// names the target release the output is written for:
//
//	target_version: "8.10"
//	recover: true
//	renames:
//	  - namespace: type
//	    from: Natural
//	    to: nat
//	  - namespace: value
//	    from: succ
//	    to: S
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/lhaig/hs2v/internal/rename"
)

// FileName is the conventional configuration file name
const FileName = "hs2v.yaml"

// MinTargetVersion is the oldest target release whose inductive blocks
// accept `where` notation bindings for reserved notations
const MinTargetVersion = "8.6"

// Config is the top-level hs2v.yaml configuration.
type Config struct {
	// TargetVersion is the release of the proof assistant the output is
	// checked with. Defaults to MinTargetVersion. Releases older than
	// MinTargetVersion are rejected; output is the same for all others.
	TargetVersion string `yaml:"target_version,omitempty"`

	// Recover replaces value bindings that fail to translate with axioms
	// instead of aborting.
	Recover bool `yaml:"recover,omitempty"`

	// Preamble controls whether the Synonym definition is emitted before
	// the first mixed inductive/synonym group. Defaults to true.
	Preamble *bool `yaml:"preamble,omitempty"`

	// Renames seeds the renaming table after the built-in correspondences.
	Renames []Rename `yaml:"renames,omitempty"`
}

// Rename is one seeded renaming.
type Rename struct {
	Namespace string `yaml:"namespace"`
	From      string `yaml:"from"`
	To        string `yaml:"to"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads and validates the configuration at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates configuration data. path is only used in
// error messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.TargetVersion == "" {
		c.TargetVersion = MinTargetVersion
	}
	if c.Preamble == nil {
		on := true
		c.Preamble = &on
	}
}

func (c *Config) validate(path string) error {
	v, err := semver.NewVersion(c.TargetVersion)
	if err != nil {
		return fmt.Errorf("%s: target_version %q: %w", path, c.TargetVersion, err)
	}
	supported, err := semver.NewConstraint(">= " + MinTargetVersion)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !supported.Check(v) {
		return fmt.Errorf("%s: target_version %s is older than the minimum supported %s",
			path, c.TargetVersion, MinTargetVersion)
	}

	seen := make(map[string]int)
	for i, r := range c.Renames {
		ns, err := rename.ParseNamespace(r.Namespace)
		if err != nil {
			return fmt.Errorf("%s: renames[%d]: %w", path, i, err)
		}
		if strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "" {
			return fmt.Errorf("%s: renames[%d]: from and to are required", path, i)
		}
		if rename.IsReserved(r.To) {
			return fmt.Errorf("%s: renames[%d]: target %q is a reserved word", path, i, r.To)
		}
		key := ns.String() + " " + r.From
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%s: renames[%d]: %s %q already renamed by renames[%d]",
				path, i, ns, r.From, prev)
		}
		seen[key] = i
	}
	return nil
}

// EmitPreamble reports whether the Synonym preamble should be emitted
func (c *Config) EmitPreamble() bool {
	return c.Preamble == nil || *c.Preamble
}

// Target returns the parsed target version
func (c *Config) Target() (*semver.Version, error) {
	return semver.NewVersion(c.TargetVersion)
}

// NewTable builds the renaming table for a run: the built-in
// correspondences followed by the configured renames
func (c *Config) NewTable() (*rename.Table, error) {
	t := rename.NewTable()
	for i, r := range c.Renames {
		ns, err := rename.ParseNamespace(r.Namespace)
		if err != nil {
			return nil, fmt.Errorf("renames[%d]: %w", i, err)
		}
		t.Rename(ns, r.From, r.To)
	}
	return t, nil
}
