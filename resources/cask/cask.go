// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package cask

import (
	"context"

	"github.com/stationctl/stationctl/model"
	"github.com/stationctl/stationctl/resources/cask/brew"
)

func init() {
	brew.Register()
}

type CaskProvider interface {
	model.Provider

	// Install installs the cask, when adopt is true a pre-existing
	// unmanaged bundle is registered with the backend instead of
	// being reinstalled
	Install(ctx context.Context, cask string, adopt bool) error
	Uninstall(ctx context.Context, cask string) error
	Status(ctx context.Context, cask string) (*model.CaskState, error)

	// BundlePath maps a cask name to the application bundle it installs
	BundlePath(cask string) string
}
