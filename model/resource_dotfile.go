// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/stationctl/stationctl/templates"
)

const (
	// ResourceStatusDotfileProtocol is the protocol identifier for dotfile resource state
	ResourceStatusDotfileProtocol = "io.stationctl.v1.resource.dotfile.state"

	// DotfileTypeName is the type name for dotfile resources
	DotfileTypeName = "dotfile"
)

// DotfileResourceProperties defines a configuration file created only when absent,
// a pre-existing file is never overwritten
type DotfileResourceProperties struct {
	CommonResourceProperties `yaml:",inline"`

	Path    string `json:"path" yaml:"path"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Mode    string `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// DotfileState represents the current state of a managed dotfile
type DotfileState struct {
	CommonResourceState

	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
	Size   int64  `json:"size,omitempty" yaml:"size,omitempty"`
	Mode   string `json:"mode,omitempty" yaml:"mode,omitempty"`
}

func (d *DotfileState) CommonState() *CommonResourceState {
	return &d.CommonResourceState
}

func (p *DotfileResourceProperties) CommonProperties() *CommonResourceProperties {
	return &p.CommonResourceProperties
}

// Validate validates the dotfile resource properties
func (p *DotfileResourceProperties) Validate() error {
	err := p.CommonResourceProperties.Validate()
	if err != nil {
		return err
	}

	if p.Path == "" {
		return fmt.Errorf("path is required")
	}

	if !filepath.IsAbs(p.Path) {
		return fmt.Errorf("path must be absolute: %q", p.Path)
	}

	if p.Ensure != EnsurePresent && p.Ensure != EnsureAbsent {
		return fmt.Errorf("dotfile ensure must be %q or %q", EnsurePresent, EnsureAbsent)
	}

	return nil
}

// ResolveTemplates resolves template expressions in the dotfile resource properties
func (p *DotfileResourceProperties) ResolveTemplates(env *templates.Env) error {
	err := p.CommonResourceProperties.ResolveTemplates(env)
	if err != nil {
		return err
	}

	for _, field := range []*string{&p.Path, &p.Content} {
		val, err := templates.ResolveTemplateString(*field, env)
		if err != nil {
			return err
		}
		*field = val
	}

	return nil
}

// ToYamlManifest returns the dotfile resource properties as a yaml document
func (p *DotfileResourceProperties) ToYamlManifest() (yaml.RawMessage, error) {
	return yaml.Marshal(p)
}

// NewDotfileResourcePropertiesFromYaml creates a new dotfile resource properties object from a yaml document, does not validate or expand templates
func NewDotfileResourcePropertiesFromYaml(raw yaml.RawMessage) (*DotfileResourceProperties, error) {
	prop := &DotfileResourceProperties{}
	err := yaml.Unmarshal(raw, prop)
	if err != nil {
		return nil, err
	}

	prop.Type = DotfileTypeName

	return prop, nil
}
