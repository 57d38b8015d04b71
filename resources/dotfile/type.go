// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package dotfile

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	iu "github.com/stationctl/stationctl/internal/util"
	"github.com/stationctl/stationctl/model"
)

// ProviderName is the static provider backing dotfile resources
const ProviderName = "posix"

const defaultMode = fs.FileMode(0o644)

// Type represents a configuration file that is created only when absent,
// a pre-existing file is never overwritten
type Type struct {
	prop *model.DotfileResourceProperties
	mgr  model.Manager
	log  model.Logger

	mu sync.Mutex
}

var _ model.Resource = (*Type)(nil)

// New creates a new dotfile resource with the given properties
func New(ctx context.Context, mgr model.Manager, properties model.DotfileResourceProperties) (*Type, error) {
	env, err := mgr.TemplateEnvironment(ctx)
	if err != nil {
		return nil, err
	}

	err = properties.ResolveTemplates(env)
	if err != nil {
		return nil, err
	}

	err = properties.Validate()
	if err != nil {
		return nil, err
	}

	logger, err := mgr.Logger("type", model.DotfileTypeName, "name", properties.Name)
	if err != nil {
		return nil, err
	}

	t := &Type{
		prop: &properties,
		mgr:  mgr,
		log:  logger,
	}

	t.log.Debug("Created resource instance")

	return t, nil
}

func (t *Type) newTransactionEvent() *model.TransactionEvent {
	event := model.NewTransactionEvent(model.DotfileTypeName, t.prop.Name)
	event.Properties = t.prop
	event.Ensure = t.prop.Ensure
	event.Provider = ProviderName

	return event
}

// Apply creates the file when it is absent, an existing file is left
// untouched whatever its content
func (t *Type) Apply(ctx context.Context) (*model.TransactionEvent, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := t.newTransactionEvent()
	start := time.Now()

	state, err := t.apply(ctx)
	event.Duration = time.Since(start)
	if err != nil {
		event.Failed = true
		event.Error = err.Error()
	}

	if state != nil {
		event.Status = state
		event.Changed = state.Changed
		event.ActualEnsure = state.Ensure
		event.Noop = state.Noop
		event.NoopMessage = state.NoopMessage
		event.DetectedVia = state.DetectedVia
		event.Skipped = state.Stable && state.DetectedVia != ""
	}

	return event, nil
}

func (t *Type) apply(_ context.Context) (*model.DotfileState, error) {
	var (
		properties   = t.prop
		noop         = t.mgr.NoopMode()
		noopMessage  string
		detectedVia  string
		refreshState bool
	)

	exists := iu.FileExists(properties.Path)

	switch {
	case properties.Ensure == model.EnsureAbsent:
		if !exists {
			t.log.Debug("File already absent", "path", properties.Path)
			break
		}

		t.log.Info("Removing file", "path", properties.Path)
		if noop {
			noopMessage = "Would have removed"
			refreshState = true
			break
		}

		err := os.Remove(properties.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", properties.Path, err)
		}

		refreshState = true

	case exists:
		t.log.Debug("File exists, leaving untouched", "path", properties.Path)
		detectedVia = model.DetectedMarker

	default:
		mode, err := t.mode()
		if err != nil {
			return nil, err
		}

		t.log.Info("Creating file", "path", properties.Path, "mode", fmt.Sprintf("%04o", mode))
		if noop {
			noopMessage = "Would have created"
			refreshState = true
			break
		}

		err = os.MkdirAll(filepath.Dir(properties.Path), 0o755)
		if err != nil {
			return nil, fmt.Errorf("failed to create parent directory: %w", err)
		}

		err = os.WriteFile(properties.Path, []byte(properties.Content), mode)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", properties.Path, err)
		}

		refreshState = true
	}

	state := t.currentState()
	if noop && refreshState {
		if properties.Ensure == model.EnsureAbsent {
			state.Ensure = model.EnsureAbsent
			state.Exists = false
		} else {
			state.Ensure = model.EnsurePresent
			state.Exists = true
		}
	}

	state.Noop = noop
	state.NoopMessage = noopMessage
	state.DetectedVia = detectedVia
	state.Stable = !refreshState
	state.Changed = refreshState

	return state, nil
}

func (t *Type) mode() (fs.FileMode, error) {
	if t.prop.Mode == "" {
		return defaultMode, nil
	}

	mode, err := strconv.ParseUint(t.prop.Mode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid mode %q: %w", t.prop.Mode, err)
	}

	return fs.FileMode(mode), nil
}

func (t *Type) currentState() *model.DotfileState {
	ensure := model.EnsureAbsent
	state := &model.DotfileState{
		Path: t.prop.Path,
	}

	stat, err := os.Stat(t.prop.Path)
	if err == nil {
		ensure = model.EnsurePresent
		state.Exists = true
		state.Size = stat.Size()
		state.Mode = fmt.Sprintf("%04o", stat.Mode().Perm())
	}

	state.CommonResourceState = model.NewCommonResourceState(model.ResourceStatusDotfileProtocol, model.DotfileTypeName, t.prop.Name, ensure)

	return state
}

// Info returns the current state of the file
func (t *Type) Info(_ context.Context) (any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.currentState(), nil
}

func (t *Type) String() string {
	return fmt.Sprintf("%s#%s", model.DotfileTypeName, t.prop.Name)
}

// Type returns the resource type name
func (t *Type) Type() string {
	return model.DotfileTypeName
}

// Name returns the dotfile name
func (t *Type) Name() string {
	return t.prop.Name
}

// Provider returns the name of the provider
func (t *Type) Provider() string {
	return ProviderName
}

// Properties returns the dotfile resource properties
func (t *Type) Properties() model.ResourceProperties {
	return t.prop
}
