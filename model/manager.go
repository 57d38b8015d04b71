// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"encoding/json"
	"io"

	"github.com/stationctl/stationctl/templates"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Prompter asks the operator questions, in non interactive mode answers
// are the supplied defaults without any terminal interaction
type Prompter interface {
	Confirm(question string, dflt bool) (bool, error)
	Value(question string, dflt string) (string, error)
}

type Manager interface {
	FactsRaw(ctx context.Context) (json.RawMessage, error)
	Facts(ctx context.Context) (map[string]any, error)
	Data() map[string]any
	Logger(args ...any) (Logger, error)
	UserLogger() Logger

	// NewRunner creates the runner resources use for read-only detector
	// commands, it always executes for real so that noop runs report the
	// same outcomes a live run would
	NewRunner() (CommandRunner, error)

	// MutationRunner is the sole mutation boundary, in noop mode it records
	// commands rather than executing them
	MutationRunner() (CommandRunner, error)

	NoopMode() bool
	Interactive() bool
	Prompter() Prompter

	RecordEvent(event *TransactionEvent) error
	StartSession(Profile) (SessionStore, error)
	TemplateEnvironment(ctx context.Context) (*templates.Env, error)

	// profile related

	ResolveProfileReader(ctx context.Context, profile io.ReadCloser) (map[string]any, Profile, error)
	ApplyProfile(ctx context.Context, profile Profile) (SessionStore, error)
	SessionSummary() (*SessionSummary, error)
}
