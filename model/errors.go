// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
)

var (
	ErrResourceInvalid        = errors.New("invalid resource")
	ErrResourceNameRequired   = errors.New("name is required")
	ErrResourceEnsureRequired = errors.New("ensure is required")
	ErrProviderNotFound       = errors.New("provider not found")
	ErrProviderNotManageable  = errors.New("provider is not manageable")
	ErrMultipleProviders      = errors.New("multiple providers found")
	ErrNoSuitableProvider     = errors.New("no suitable provider found")
	ErrDuplicateProvider      = errors.New("provider already exists")
	ErrUnknownType            = errors.New("unknown resource type")
	ErrInvalidProfile         = errors.New("invalid profile")

	// ErrPrerequisiteMissing halts an entire run, the operator has to complete
	// an external installation step before re-invoking
	ErrPrerequisiteMissing = errors.New("prerequisite missing")

	// ErrUserDeclined is not a failure, the resource is skipped when an
	// interactive confirmation was answered negatively
	ErrUserDeclined = errors.New("declined by user")
)
