// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package brew

import (
	"github.com/stationctl/stationctl/internal/registry"
	iu "github.com/stationctl/stationctl/internal/util"
	"github.com/stationctl/stationctl/model"
)

// Register registers this provider with the registry
func Register() {
	registry.MustRegister(&factory{})
}

type factory struct{}

func (p *factory) TypeName() string { return model.PackageTypeName }
func (p *factory) Name() string     { return ProviderName }
func (p *factory) New(log model.Logger, runner model.CommandRunner, mutator model.CommandRunner) (model.Provider, error) {
	return NewBrewProvider(log, runner, mutator)
}
func (p *factory) IsManageable(_ map[string]any) (bool, int, error) {
	_, found, err := iu.ExecutableInPath("brew")
	if err != nil {
		return false, 0, err
	}

	// ranked below apt so the native package manager wins on linux
	// hosts that also have linuxbrew installed
	return found, 10, nil
}
