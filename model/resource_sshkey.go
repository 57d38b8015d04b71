// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/stationctl/stationctl/templates"
)

const (
	// ResourceStatusSSHKeyProtocol is the protocol identifier for sshkey resource state
	ResourceStatusSSHKeyProtocol = "io.stationctl.v1.resource.sshkey.state"

	// SSHKeyTypeName is the type name for sshkey resources
	SSHKeyTypeName = "sshkey"

	SSHKeyDefaultType = "ed25519"
)

var sshKeyTypes = []string{"ed25519", "rsa", "ecdsa"}

// SSHKeyResourceProperties defines a SSH keypair that is generated when absent,
// an existing key file is never replaced
type SSHKeyResourceProperties struct {
	CommonResourceProperties `yaml:",inline"`

	Path    string `json:"path" yaml:"path"`
	KeyType string `json:"key_type,omitempty" yaml:"key_type,omitempty"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
	Bits    int    `json:"bits,omitempty" yaml:"bits,omitempty"`

	// Confirm gates generation behind an interactive confirmation, a
	// negative answer skips the resource without error
	Confirm bool `json:"confirm,omitempty" yaml:"confirm,omitempty"`
}

// SSHKeyState represents the current state of a SSH keypair
type SSHKeyState struct {
	CommonResourceState

	Path        string `json:"path" yaml:"path"`
	PublicPath  string `json:"public_path" yaml:"public_path"`
	Exists      bool   `json:"exists" yaml:"exists"`
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

func (s *SSHKeyState) CommonState() *CommonResourceState {
	return &s.CommonResourceState
}

func (p *SSHKeyResourceProperties) CommonProperties() *CommonResourceProperties {
	return &p.CommonResourceProperties
}

// Validate validates the sshkey resource properties
func (p *SSHKeyResourceProperties) Validate() error {
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

	if p.KeyType != "" && !slices.Contains(sshKeyTypes, p.KeyType) {
		return fmt.Errorf("invalid key type %q", p.KeyType)
	}

	if p.Ensure != EnsurePresent {
		return fmt.Errorf("sshkey only supports ensure %q", EnsurePresent)
	}

	return nil
}

// ResolveTemplates resolves template expressions in the sshkey resource properties
func (p *SSHKeyResourceProperties) ResolveTemplates(env *templates.Env) error {
	err := p.CommonResourceProperties.ResolveTemplates(env)
	if err != nil {
		return err
	}

	for _, field := range []*string{&p.Path, &p.Comment} {
		val, err := templates.ResolveTemplateString(*field, env)
		if err != nil {
			return err
		}
		*field = val
	}

	return nil
}

// ToYamlManifest returns the sshkey resource properties as a yaml document
func (p *SSHKeyResourceProperties) ToYamlManifest() (yaml.RawMessage, error) {
	return yaml.Marshal(p)
}

// NewSSHKeyResourcePropertiesFromYaml creates a new sshkey resource properties object from a yaml document, does not validate or expand templates
func NewSSHKeyResourcePropertiesFromYaml(raw yaml.RawMessage) (*SSHKeyResourceProperties, error) {
	prop := &SSHKeyResourceProperties{}
	err := yaml.Unmarshal(raw, prop)
	if err != nil {
		return nil, err
	}

	prop.Type = SSHKeyTypeName

	return prop, nil
}
