// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/stationctl/stationctl/templates"
)

const (
	// EnsurePresent indicates a resource should be present on the system
	EnsurePresent string = "present"
	// EnsureAbsent indicates a resource should be removed from the system
	EnsureAbsent string = "absent"
)

// Detection signals, ordered strongest to weakest. Registry membership is
// authoritative and cheapest, a binary on PATH is circumstantial and a
// pre-existing app bundle is the weakest signal and triggers adoption
const (
	DetectedRegistry = "registry"
	DetectedPath     = "path"
	DetectedBundle   = "bundle"
	DetectedMarker   = "marker"
)

// Resource represents a system state that can be managed
type Resource interface {
	Type() string
	Name() string
	Provider() string
	Properties() ResourceProperties
	Apply(context.Context) (*TransactionEvent, error)
	Info(context.Context) (any, error)
}

type ResourceState interface {
	CommonState() *CommonResourceState
}

// ResourceProperties defines the interface for resource property validation and template resolution
type ResourceProperties interface {
	CommonProperties() *CommonResourceProperties
	Validate() error
	ResolveTemplates(*templates.Env) error
	ToYamlManifest() (yaml.RawMessage, error)
}

// CommonResourceProperties contains properties shared by all resource types
type CommonResourceProperties struct {
	Type         string                 `json:"-" yaml:"-"`
	Name         string                 `json:"name" yaml:"name"`
	Ensure       string                 `json:"ensure,omitempty" yaml:"ensure,omitempty"`
	Provider     string                 `json:"provider,omitempty" yaml:"provider,omitempty"`
	Control      *CommonResourceControl `json:"control,omitempty" yaml:"control,omitempty"`
	SkipValidate bool                   `json:"-" yaml:"-"`
}

type CommonResourceControl struct {
	ManageIf     string `json:"if,omitempty" yaml:"if,omitempty"`
	ManageUnless string `json:"unless,omitempty" yaml:"unless,omitempty"`
}

// ResolveTemplates resolves template expressions in common resource properties
func (p *CommonResourceProperties) ResolveTemplates(env *templates.Env) error {
	val, err := templates.ResolveTemplateString(p.Ensure, env)
	if err != nil {
		return err
	}
	p.Ensure = val

	val, err = templates.ResolveTemplateString(p.Name, env)
	if err != nil {
		return err
	}
	p.Name = val

	val, err = templates.ResolveTemplateString(p.Provider, env)
	if err != nil {
		return err
	}
	p.Provider = val

	return nil
}

// Validate validates common resource properties
func (p *CommonResourceProperties) Validate() error {
	if p.SkipValidate {
		return nil
	}

	if p.Name == "" {
		return ErrResourceNameRequired
	}

	if p.Ensure == "" {
		return ErrResourceEnsureRequired
	}

	return nil
}

// NewCommonResourceState creates a new common resource state with the given properties
func NewCommonResourceState(protocol string, resourceType string, name string, ensure string) CommonResourceState {
	return CommonResourceState{
		TimeStamp:    time.Now().UTC(),
		Protocol:     protocol,
		ResourceType: resourceType,
		Name:         name,
		Ensure:       ensure,
	}
}

// CommonResourceState contains state information shared by all resource types
type CommonResourceState struct {
	TimeStamp    time.Time `json:"timestamp" yaml:"timestamp"`
	Protocol     string    `json:"protocol" yaml:"protocol"`
	ResourceType string    `json:"type" yaml:"type"`
	Name         string    `json:"name" yaml:"name"`
	Ensure       string    `json:"ensure" yaml:"ensure"`
	Changed      bool      `json:"changed" yaml:"changed"`
	Stable       bool      `json:"stable" yaml:"stable"`
	Noop         bool      `json:"noop" yaml:"noop"`
	NoopMessage  string    `json:"noop_message,omitempty" yaml:"noop_message,omitempty"`

	// DetectedVia records which detector satisfied the resource, empty when
	// no detector matched
	DetectedVia string `json:"detected_via,omitempty" yaml:"detected_via,omitempty"`
}

// NewResourcePropertiesFromYaml creates a new resource properties object from a yaml document, it validates the properties and expands any templates
func NewResourcePropertiesFromYaml(typeName string, rawProperties yaml.RawMessage, env *templates.Env) ([]ResourceProperties, error) {
	var props []ResourceProperties
	var err error

	switch typeName {
	case PackageTypeName:
		props, err = parseProperties(rawProperties, typeName, func() ResourceProperties { return &PackageResourceProperties{} })
	case CaskTypeName:
		props, err = parseProperties(rawProperties, typeName, func() ResourceProperties { return &CaskResourceProperties{} })
	case ScriptTypeName:
		props, err = parseProperties(rawProperties, typeName, func() ResourceProperties { return &ScriptResourceProperties{} })
	case DotfileTypeName:
		props, err = parseProperties(rawProperties, typeName, func() ResourceProperties { return &DotfileResourceProperties{} })
	case GitConfigTypeName:
		props, err = parseProperties(rawProperties, typeName, func() ResourceProperties { return &GitConfigResourceProperties{} })
	case SSHKeyTypeName:
		props, err = parseProperties(rawProperties, typeName, func() ResourceProperties { return &SSHKeyResourceProperties{} })
	default:
		return nil, fmt.Errorf("%w: %w %s", ErrResourceInvalid, ErrUnknownType, typeName)
	}
	if err != nil {
		return nil, err
	}

	for _, prop := range props {
		err = prop.ResolveTemplates(env)
		if err != nil {
			return nil, err
		}
	}

	return props, nil
}

// NewValidatedResourcePropertiesFromYaml creates and validates a new resource properties object from a yaml document, it validates the properties and expands any templates
func NewValidatedResourcePropertiesFromYaml(typeName string, rawProperties yaml.RawMessage, env *templates.Env) ([]ResourceProperties, error) {
	props, err := NewResourcePropertiesFromYaml(typeName, rawProperties, env)
	if err != nil {
		return nil, err
	}

	for _, prop := range props {
		err = prop.Validate()
		if err != nil {
			return nil, err
		}
	}

	return props, nil
}

func findDefaultProperties(props []map[string]yaml.RawMessage) (yaml.RawMessage, error) {
	var defaultProps yaml.RawMessage

	for _, v := range props {
		if len(v) != 1 {
			return nil, fmt.Errorf("multiple resource names found in resource")
		}
		_, dflt := v["defaults"]
		if dflt {
			if defaultProps != nil {
				return nil, fmt.Errorf("multiple defaults found in resource")
			}
			defaultProps = v["defaults"]
		}
	}

	return defaultProps, nil
}

func parseProperties(raw yaml.RawMessage, typeName string, target func() ResourceProperties) ([]ResourceProperties, error) {
	var props []map[string]yaml.RawMessage

	yaml.Unmarshal(raw, &props) // failure is expected cos this detects 2 formats

	switch len(props) {
	case 0:
		prop := target()
		err := yaml.Unmarshal(raw, prop)
		if err != nil {
			return nil, err
		}

		cp := prop.CommonProperties()
		cp.Type = typeName
		return []ResourceProperties{prop}, nil

	default:
		return parseMultipleProperties(props, typeName, target)
	}
}

func parseMultipleProperties(props []map[string]yaml.RawMessage, typeName string, target func() ResourceProperties) ([]ResourceProperties, error) {
	var res []ResourceProperties

	dflt, err := findDefaultProperties(props)
	if err != nil {
		return nil, err
	}

	for _, v := range props {
		for name, vprop := range v {
			if name == "defaults" {
				continue
			}

			prop := target()

			if len(dflt) > 0 {
				err := yaml.Unmarshal(dflt, prop)
				if err != nil {
					return nil, err
				}
			}

			err := yaml.Unmarshal(vprop, prop)
			if err != nil {
				return nil, err
			}

			cp := prop.CommonProperties()
			cp.Name = name
			cp.Type = typeName
			res = append(res, prop)
		}
	}

	return res, nil
}
