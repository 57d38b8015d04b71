// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/stationctl/stationctl/internal/cmdrunner"
	"github.com/stationctl/stationctl/internal/facts"
	"github.com/stationctl/stationctl/internal/prompt"
	"github.com/stationctl/stationctl/model"
	"github.com/stationctl/stationctl/profile"
	"github.com/stationctl/stationctl/session"
	"github.com/stationctl/stationctl/templates"
)

// Station is the workstation provisioning orchestrator
type Station struct {
	session     model.SessionStore
	log         model.Logger
	userLogger  model.Logger
	prompter    model.Prompter
	data        map[string]any
	extraFacts  map[string]any
	noop        bool
	interactive bool

	mu sync.Mutex
}

var _ model.Manager = (*Station)(nil)

// NewManager creates a new Station instance with the provided loggers
func NewManager(log model.Logger, userLogger model.Logger, opts ...Option) (*Station, error) {
	mgr := &Station{log: log, userLogger: userLogger}

	for _, opt := range opts {
		err := opt(mgr)
		if err != nil {
			return nil, err
		}
	}

	if mgr.session == nil {
		sessionLog, err := mgr.Logger("session", "memory")
		if err != nil {
			return nil, err
		}

		mgr.session, err = session.NewMemorySessionStore(sessionLog, userLogger)
		if err != nil {
			return nil, err
		}
	}

	if mgr.prompter == nil {
		promptLog, err := mgr.Logger("component", "prompt")
		if err != nil {
			return nil, err
		}

		mgr.prompter = prompt.New(mgr.interactive, promptLog)
	}

	return mgr, nil
}

// NoopMode reports whether mutating actions should only be recorded, never performed
func (m *Station) NoopMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.noop
}

// Interactive reports whether the operator may be prompted for decisions
func (m *Station) Interactive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.interactive
}

// Prompter returns the interactive prompt resolver
func (m *Station) Prompter() model.Prompter {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.prompter
}

// SetData sets the resolved profile data for the manager
func (m *Station) SetData(data map[string]any) map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = data

	return m.data
}

// Data returns the resolved profile data
func (m *Station) Data() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.data
}

// ResolveProfileReader reads and resolves a profile, returning the resolved data and parsed profile
func (m *Station) ResolveProfileReader(ctx context.Context, r io.ReadCloser) (map[string]any, model.Profile, error) {
	defer r.Close()

	env, err := m.TemplateEnvironment(ctx)
	if err != nil {
		return nil, nil, err
	}

	profileLogger, err := m.Logger("component", "profile")
	if err != nil {
		return nil, nil, err
	}

	parsed, err := profile.ParseProfileReader(r, env, profileLogger)
	if err != nil {
		return nil, nil, err
	}

	data := m.SetData(parsed.Data())

	return data, parsed, nil
}

// ApplyProfile applies a parsed profile and records all changes to the session store
func (m *Station) ApplyProfile(ctx context.Context, p model.Profile) (model.SessionStore, error) {
	return p.Execute(ctx, m, m.UserLogger())
}

// StartSession starts a new session for the given profile
func (m *Station) StartSession(p model.Profile) (model.SessionStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.session.StartSession(p)
	if err != nil {
		return nil, err
	}

	return m.session, nil
}

// SessionSummary summarizes the events recorded in the current session
func (m *Station) SessionSummary() (*model.SessionSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	events, err := m.session.AllEvents()
	if err != nil {
		return nil, err
	}

	return model.BuildSessionSummary(events), nil
}

// FactsRaw returns the system facts as a JSON raw message
func (m *Station) FactsRaw(ctx context.Context) (json.RawMessage, error) {
	f, err := m.Facts(ctx)
	if err != nil {
		return nil, err
	}

	return json.Marshal(f)
}

// Facts gathers and returns the system facts
func (m *Station) Facts(ctx context.Context) (map[string]any, error) {
	to, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	factLog, err := m.Logger("component", "facts")
	if err != nil {
		return nil, err
	}

	f, err := facts.StandardFacts(to, factLog)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	extra := m.extraFacts
	m.mu.Unlock()

	if len(extra) > 0 {
		f = mergeFacts(f, extra)
	}

	return f, nil
}

// MergeFacts merges additional facts over the gathered system facts
func (m *Station) MergeFacts(extra map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.extraFacts == nil {
		m.extraFacts = make(map[string]any)
	}

	for k, v := range extra {
		m.extraFacts[k] = v
	}
}

// TemplateEnvironment creates a template environment from current facts, data and process environment
func (m *Station) TemplateEnvironment(ctx context.Context) (*templates.Env, error) {
	f, err := m.Facts(ctx)
	if err != nil {
		return nil, err
	}

	environ := make(map[string]string)
	for _, line := range os.Environ() {
		k, v, ok := strings.Cut(line, "=")
		if ok {
			environ[k] = v
		}
	}

	return &templates.Env{
		Facts:   f,
		Data:    m.Data(),
		Environ: environ,
	}, nil
}

// Logger creates a new logger with the provided key-value pairs added to the context
func (m *Station) Logger(args ...any) (model.Logger, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("invalid logger arguments, must be key value pairs")
	}

	return m.log.With(args...), nil
}

// UserLogger returns the logger used for user-facing status lines
func (m *Station) UserLogger() model.Logger {
	return m.userLogger
}

// NewRunner creates the command runner used for read-only detector commands
func (m *Station) NewRunner() (model.CommandRunner, error) {
	log, err := m.Logger("component", "runner")
	if err != nil {
		return nil, err
	}

	return cmdrunner.NewCommandRunner(log)
}

// MutationRunner creates the runner mutating commands are routed through,
// in noop mode this is a recorder that never executes anything
func (m *Station) MutationRunner() (model.CommandRunner, error) {
	if m.NoopMode() {
		log, err := m.Logger("component", "dryrun")
		if err != nil {
			return nil, err
		}

		return cmdrunner.NewDryRunner(log)
	}

	return m.NewRunner()
}

func (m *Station) RecordEvent(event *model.TransactionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return fmt.Errorf("no session store available")
	}

	return m.session.RecordEvent(event)
}

func mergeFacts(target map[string]any, source map[string]any) map[string]any {
	res := make(map[string]any, len(target))
	for k, v := range target {
		res[k] = v
	}
	for k, v := range source {
		if tm, ok := res[k].(map[string]any); ok {
			if sm, ok := v.(map[string]any); ok {
				res[k] = mergeFacts(tm, sm)
				continue
			}
		}
		res[k] = v
	}

	return res
}
