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

func (p *factory) TypeName() string { return model.CaskTypeName }
func (p *factory) Name() string     { return ProviderName }
func (p *factory) New(log model.Logger, runner model.CommandRunner, mutator model.CommandRunner) (model.Provider, error) {
	return NewBrewCaskProvider(log, runner, mutator)
}
func (p *factory) IsManageable(facts map[string]any) (bool, int, error) {
	if osFacts, ok := facts["os"].(map[string]any); ok {
		if name, ok := osFacts["name"].(string); ok && name != "darwin" {
			return false, 0, nil
		}
	}

	_, found, err := iu.ExecutableInPath("brew")
	if err != nil {
		return false, 0, err
	}

	return found, 1, nil
}
