// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"regexp"

	"github.com/goccy/go-yaml"

	"github.com/stationctl/stationctl/templates"
)

const (
	// ResourceStatusGitConfigProtocol is the protocol identifier for gitconfig resource state
	ResourceStatusGitConfigProtocol = "io.stationctl.v1.resource.gitconfig.state"

	// GitConfigTypeName is the type name for gitconfig resources
	GitConfigTypeName = "gitconfig"
)

// gitconfig keys are dotted section.name paths like user.email or core.editor
var gitConfigKeyRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*(\.[a-zA-Z0-9-]+)+$`)

// GitConfigResourceProperties defines a single global git configuration entry
type GitConfigResourceProperties struct {
	CommonResourceProperties `yaml:",inline"`

	Value string `json:"value" yaml:"value"`

	// Prompt is asked interactively when the key is absent, with Value as
	// the default answer, non interactive runs use Value directly
	Prompt string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
}

// GitConfigState represents the current value of a global git configuration entry
type GitConfigState struct {
	CommonResourceState

	Key     string `json:"key" yaml:"key"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Present bool   `json:"present" yaml:"present"`
}

func (g *GitConfigState) CommonState() *CommonResourceState {
	return &g.CommonResourceState
}

func (p *GitConfigResourceProperties) CommonProperties() *CommonResourceProperties {
	return &p.CommonResourceProperties
}

// Validate validates the gitconfig resource properties
func (p *GitConfigResourceProperties) Validate() error {
	err := p.CommonResourceProperties.Validate()
	if err != nil {
		return err
	}

	if !gitConfigKeyRegex.MatchString(p.Name) {
		return fmt.Errorf("invalid git configuration key: %q", p.Name)
	}

	if p.Ensure == EnsurePresent && p.Value == "" && p.Prompt == "" && !p.SkipValidate {
		return fmt.Errorf("value or prompt is required")
	}

	return nil
}

// ResolveTemplates resolves template expressions in the gitconfig resource properties
func (p *GitConfigResourceProperties) ResolveTemplates(env *templates.Env) error {
	err := p.CommonResourceProperties.ResolveTemplates(env)
	if err != nil {
		return err
	}

	val, err := templates.ResolveTemplateString(p.Value, env)
	if err != nil {
		return err
	}
	p.Value = val

	return nil
}

// ToYamlManifest returns the gitconfig resource properties as a yaml document
func (p *GitConfigResourceProperties) ToYamlManifest() (yaml.RawMessage, error) {
	return yaml.Marshal(p)
}

// NewGitConfigResourcePropertiesFromYaml creates a new gitconfig resource properties object from a yaml document, does not validate or expand templates
func NewGitConfigResourcePropertiesFromYaml(raw yaml.RawMessage) (*GitConfigResourceProperties, error) {
	prop := &GitConfigResourceProperties{}
	err := yaml.Unmarshal(raw, prop)
	if err != nil {
		return nil, err
	}

	prop.Type = GitConfigTypeName

	return prop, nil
}
