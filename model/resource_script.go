// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/kballard/go-shellquote"

	"github.com/stationctl/stationctl/templates"
)

const (
	// ResourceStatusScriptProtocol is the protocol identifier for script resource state
	ResourceStatusScriptProtocol = "io.stationctl.v1.resource.script.state"

	// ScriptTypeName is the type name for script resources
	ScriptTypeName = "script"
)

// ScriptResourceProperties defines the properties for a one-shot bootstrap command
type ScriptResourceProperties struct {
	CommonResourceProperties `yaml:",inline"`

	// Command is the full command line to run, parsed with shell quoting rules
	Command string `json:"command" yaml:"command"`

	// Creates is a marker path, when it exists the command is never run again
	Creates string `json:"creates" yaml:"creates"`

	Environment []string `json:"environment,omitempty" yaml:"environment,omitempty"`
	Cwd         string   `json:"cwd,omitempty" yaml:"cwd,omitempty"`
}

// ScriptState represents whether a bootstrap command has been applied
type ScriptState struct {
	CommonResourceState

	Creates  string `json:"creates" yaml:"creates"`
	ExitCode *int   `json:"exitcode,omitempty" yaml:"exitcode,omitempty"`
}

func (s *ScriptState) CommonState() *CommonResourceState {
	return &s.CommonResourceState
}

func (p *ScriptResourceProperties) CommonProperties() *CommonResourceProperties {
	return &p.CommonResourceProperties
}

// ParseCommand splits the command line honoring shell quoting
func (p *ScriptResourceProperties) ParseCommand() (string, []string, error) {
	parts, err := shellquote.Split(p.Command)
	if err != nil {
		return "", nil, fmt.Errorf("invalid command: %w", err)
	}

	if len(parts) == 0 {
		return "", nil, fmt.Errorf("command is empty")
	}

	return parts[0], parts[1:], nil
}

// Validate validates the script resource properties
func (p *ScriptResourceProperties) Validate() error {
	err := p.CommonResourceProperties.Validate()
	if err != nil {
		return err
	}

	if p.SkipValidate {
		return nil
	}

	if p.Command == "" {
		return fmt.Errorf("command is required")
	}

	if p.Creates == "" {
		return fmt.Errorf("creates is required")
	}

	_, _, err = p.ParseCommand()

	return err
}

// ResolveTemplates resolves template expressions in the script resource properties
func (p *ScriptResourceProperties) ResolveTemplates(env *templates.Env) error {
	err := p.CommonResourceProperties.ResolveTemplates(env)
	if err != nil {
		return err
	}

	for _, field := range []*string{&p.Command, &p.Creates, &p.Cwd} {
		val, err := templates.ResolveTemplateString(*field, env)
		if err != nil {
			return err
		}
		*field = val
	}

	return nil
}

// ToYamlManifest returns the script resource properties as a yaml document
func (p *ScriptResourceProperties) ToYamlManifest() (yaml.RawMessage, error) {
	return yaml.Marshal(p)
}

// NewScriptResourcePropertiesFromYaml creates a new script resource properties object from a yaml document, does not validate or expand templates
func NewScriptResourcePropertiesFromYaml(raw yaml.RawMessage) (*ScriptResourceProperties, error) {
	prop := &ScriptResourceProperties{}
	err := yaml.Unmarshal(raw, prop)
	if err != nil {
		return nil, err
	}

	prop.Type = ScriptTypeName

	return prop, nil
}
