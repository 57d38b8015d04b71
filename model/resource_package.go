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
	// ResourceStatusPackageProtocol is the protocol identifier for package resource state
	ResourceStatusPackageProtocol = "io.stationctl.v1.resource.package.state"

	// PackageTypeName is the type name for package resources
	PackageTypeName = "package"

	PackageEnsureLatest = "latest"
)

var (
	// commonNameRegex allows alphanumeric, hyphens, underscores, dots, plus signs, colons, at signs and tildes
	// which are common in package names across different package managers
	commonNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._+:@~-]+$`)

	// dangerousCharsRegex detects shell metacharacters that could be used for injection
	dangerousCharsRegex = regexp.MustCompile(`[;&|$` + "`" + `()\[\]{}<>*?'"\\!\n\t\r]`)
)

// PackageResourceProperties defines the properties for a package resource
type PackageResourceProperties struct {
	CommonResourceProperties `yaml:",inline"`

	// Binary overrides the mapping table entry for the executable the
	// package is expected to put on PATH when it differs from the name
	Binary string `json:"binary,omitempty" yaml:"binary,omitempty"`
}

// PackageMetadata contains detailed metadata about a package
type PackageMetadata struct {
	Name     string         `json:"name" yaml:"name"`
	Version  string         `json:"version" yaml:"version"`
	Arch     string         `json:"arch,omitempty" yaml:"arch,omitempty"`
	Provider string         `json:"provider,omitempty" yaml:"provider,omitempty"`
	Extended map[string]any `json:"extended,omitempty" yaml:"extended,omitempty"`
}

// PackageState represents the current state of a package on the system
type PackageState struct {
	CommonResourceState

	Metadata *PackageMetadata `json:"metadata,omitempty"`
}

func (f *PackageState) CommonState() *CommonResourceState {
	return &f.CommonResourceState
}

func (p *PackageResourceProperties) CommonProperties() *CommonResourceProperties {
	return &p.CommonResourceProperties
}

// Validate validates the package resource properties
func (p *PackageResourceProperties) Validate() error {
	err := p.CommonResourceProperties.Validate()
	if err != nil {
		return err
	}

	if dangerousCharsRegex.MatchString(p.Name) {
		return fmt.Errorf("package name contains dangerous characters: %q", p.Name)
	}

	if !commonNameRegex.MatchString(p.Name) {
		return fmt.Errorf("package name contains invalid characters: %q (allowed: alphanumeric, ._+:@~-)", p.Name)
	}

	if p.Binary != "" && dangerousCharsRegex.MatchString(p.Binary) {
		return fmt.Errorf("binary name contains dangerous characters: %q", p.Binary)
	}

	if p.Ensure != "" && p.Ensure != EnsurePresent && p.Ensure != EnsureAbsent && p.Ensure != PackageEnsureLatest {
		// version string, validate it
		if dangerousCharsRegex.MatchString(p.Ensure) {
			return fmt.Errorf("package version/ensure contains dangerous characters: %q", p.Ensure)
		}
	}

	return nil
}

// ResolveTemplates resolves template expressions in the package resource properties
func (p *PackageResourceProperties) ResolveTemplates(env *templates.Env) error {
	return p.CommonResourceProperties.ResolveTemplates(env)
}

// ToYamlManifest returns the package resource properties as a yaml document
func (p *PackageResourceProperties) ToYamlManifest() (yaml.RawMessage, error) {
	return yaml.Marshal(p)
}

// NewPackageResourcePropertiesFromYaml creates a new package resource properties object from a yaml document, does not validate or expand templates
func NewPackageResourcePropertiesFromYaml(raw yaml.RawMessage) (*PackageResourceProperties, error) {
	prop := &PackageResourceProperties{}
	err := yaml.Unmarshal(raw, prop)
	if err != nil {
		return nil, err
	}

	prop.Type = PackageTypeName

	return prop, nil
}
