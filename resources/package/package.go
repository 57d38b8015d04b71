// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package packageresource

import (
	"context"

	"github.com/stationctl/stationctl/model"
	"github.com/stationctl/stationctl/resources/package/apt"
	"github.com/stationctl/stationctl/resources/package/brew"
)

func init() {
	brew.Register()
	apt.Register()
}

type PackageProvider interface {
	model.Provider

	Install(ctx context.Context, pkg string, version string) error
	Upgrade(ctx context.Context, pkg string, version string) error
	Downgrade(ctx context.Context, pkg string, version string) error
	Uninstall(ctx context.Context, pkg string) error
	Status(ctx context.Context, pkg string) (*model.PackageState, error)
	VersionCmp(versionA, versionB string, ignoreTrailingZeroes bool) (int, error)

	// BinaryName maps a package name to the executable it is expected to
	// put on PATH, package names often differ from their binaries
	BinaryName(pkg string) string
}
