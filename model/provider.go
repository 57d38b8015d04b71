// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import "sync"

// PackageGlobalLock serialises package manager invocations within a
// process, most package managers cannot run concurrently
var PackageGlobalLock sync.Mutex

// Provider is an interface for a resource provider
type Provider interface {
	Name() string
}

type ProviderFactory interface {
	IsManageable(map[string]any) (bool, int, error)
	TypeName() string
	Name() string
	New(Logger, CommandRunner, CommandRunner) (Provider, error)
}
