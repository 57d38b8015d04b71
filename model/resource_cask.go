// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/stationctl/stationctl/templates"
)

const (
	// ResourceStatusCaskProtocol is the protocol identifier for cask resource state
	ResourceStatusCaskProtocol = "io.stationctl.v1.resource.cask.state"

	// CaskTypeName is the type name for cask resources
	CaskTypeName = "cask"
)

// CaskResourceProperties defines the properties for a GUI application resource
type CaskResourceProperties struct {
	CommonResourceProperties `yaml:",inline"`

	// Bundle overrides the mapping table entry for the installed application
	// bundle location, eg /Applications/iTerm.app
	Bundle string `json:"bundle,omitempty" yaml:"bundle,omitempty"`

	// Adopt controls whether a pre-existing unmanaged bundle is registered
	// with the backend rather than reinstalled
	Adopt *bool `json:"adopt,omitempty" yaml:"adopt,omitempty"`
}

// CaskState represents the current state of a GUI application on the system
type CaskState struct {
	CommonResourceState

	BundlePath string           `json:"bundle_path,omitempty" yaml:"bundle_path,omitempty"`
	Adopted    bool             `json:"adopted" yaml:"adopted"`
	Metadata   *PackageMetadata `json:"metadata,omitempty"`
}

func (c *CaskState) CommonState() *CommonResourceState {
	return &c.CommonResourceState
}

func (p *CaskResourceProperties) CommonProperties() *CommonResourceProperties {
	return &p.CommonResourceProperties
}

// AdoptEnabled reports whether adoption is requested, defaulting to true
func (p *CaskResourceProperties) AdoptEnabled() bool {
	if p.Adopt == nil {
		return true
	}

	return *p.Adopt
}

// Validate validates the cask resource properties
func (p *CaskResourceProperties) Validate() error {
	err := p.CommonResourceProperties.Validate()
	if err != nil {
		return err
	}

	if dangerousCharsRegex.MatchString(p.Name) {
		return fmt.Errorf("cask name contains dangerous characters: %q", p.Name)
	}

	if !commonNameRegex.MatchString(p.Name) {
		return fmt.Errorf("cask name contains invalid characters: %q (allowed: alphanumeric, ._+:@~-)", p.Name)
	}

	if p.Ensure != EnsurePresent && p.Ensure != EnsureAbsent {
		return fmt.Errorf("cask ensure must be %q or %q", EnsurePresent, EnsureAbsent)
	}

	return nil
}

// ResolveTemplates resolves template expressions in the cask resource properties
func (p *CaskResourceProperties) ResolveTemplates(env *templates.Env) error {
	err := p.CommonResourceProperties.ResolveTemplates(env)
	if err != nil {
		return err
	}

	val, err := templates.ResolveTemplateString(p.Bundle, env)
	if err != nil {
		return err
	}
	p.Bundle = val

	return nil
}

// ToYamlManifest returns the cask resource properties as a yaml document
func (p *CaskResourceProperties) ToYamlManifest() (yaml.RawMessage, error) {
	return yaml.Marshal(p)
}

// NewCaskResourcePropertiesFromYaml creates a new cask resource properties object from a yaml document, does not validate or expand templates
func NewCaskResourcePropertiesFromYaml(raw yaml.RawMessage) (*CaskResourceProperties, error) {
	prop := &CaskResourceProperties{}
	err := yaml.Unmarshal(raw, prop)
	if err != nil {
		return nil, err
	}

	prop.Type = CaskTypeName

	return prop, nil
}
