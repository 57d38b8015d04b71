// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package apt

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
	return NewAptProvider(log, runner, mutator)
}
func (p *factory) IsManageable(_ map[string]any) (bool, int, error) {
	for _, path := range []string{"apt-get", "apt-cache", "dpkg-query"} {
		_, found, err := iu.ExecutableInPath(path)
		if err != nil {
			return false, 0, err
		}
		if !found {
			return false, 0, nil
		}
	}

	return true, 1, nil
}
