// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	iu "github.com/stationctl/stationctl/internal/util"
	"github.com/stationctl/stationctl/model"
)

// ProviderName is the static provider backing script resources
const ProviderName = "posix"

// Type represents a one-shot bootstrap command guarded by a marker file
type Type struct {
	prop *model.ScriptResourceProperties
	mgr  model.Manager
	log  model.Logger

	mu sync.Mutex
}

var _ model.Resource = (*Type)(nil)

// New creates a new script resource with the given properties
func New(ctx context.Context, mgr model.Manager, properties model.ScriptResourceProperties) (*Type, error) {
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

	logger, err := mgr.Logger("type", model.ScriptTypeName, "name", properties.Name)
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
	event := model.NewTransactionEvent(model.ScriptTypeName, t.prop.Name)
	event.Properties = t.prop
	event.Ensure = t.prop.Ensure
	event.Provider = ProviderName

	return event
}

// Apply runs the command unless its marker file already exists
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

func (t *Type) apply(ctx context.Context) (*model.ScriptState, error) {
	var (
		properties   = t.prop
		noop         = t.mgr.NoopMode()
		noopMessage  string
		detectedVia  string
		refreshState bool
		exitCode     *int
	)

	markerExists := iu.FileExists(properties.Creates)

	switch {
	case properties.Ensure == model.EnsureAbsent:
		if !markerExists {
			t.log.Debug("Marker already absent", "creates", properties.Creates)
			break
		}

		t.log.Info("Removing marker", "creates", properties.Creates)
		if noop {
			noopMessage = "Would have removed marker"
			refreshState = true
			break
		}

		err := os.Remove(properties.Creates)
		if err != nil {
			return nil, fmt.Errorf("failed to remove marker: %w", err)
		}

		refreshState = true

	case markerExists:
		t.log.Debug("Marker exists, command already applied", "creates", properties.Creates)
		detectedVia = model.DetectedMarker

	default:
		t.log.Info("Running bootstrap command", "creates", properties.Creates)
		if noop {
			noopMessage = "Would have run command"
			refreshState = true
			break
		}

		code, err := t.run(ctx)
		exitCode = &code
		if err != nil {
			return nil, err
		}

		// commands that do not write their own marker still get one so
		// they never run twice
		if !iu.FileExists(properties.Creates) {
			err = os.WriteFile(properties.Creates, nil, 0o644)
			if err != nil {
				return nil, fmt.Errorf("failed to write marker: %w", err)
			}
		}

		refreshState = true
	}

	ensure := model.EnsureAbsent
	if iu.FileExists(properties.Creates) || (noop && refreshState && properties.Ensure != model.EnsureAbsent) {
		ensure = model.EnsurePresent
	}

	state := &model.ScriptState{
		CommonResourceState: model.NewCommonResourceState(model.ResourceStatusScriptProtocol, model.ScriptTypeName, properties.Name, ensure),
		Creates:             properties.Creates,
		ExitCode:            exitCode,
	}
	state.Noop = noop
	state.NoopMessage = noopMessage
	state.DetectedVia = detectedVia
	state.Stable = !refreshState
	state.Changed = refreshState

	return state, nil
}

func (t *Type) run(ctx context.Context) (int, error) {
	mutator, err := t.mgr.MutationRunner()
	if err != nil {
		return 0, err
	}

	command, args, err := t.prop.ParseCommand()
	if err != nil {
		return 0, err
	}

	_, stderr, exitcode, err := mutator.ExecuteWithOptions(ctx, model.ExtendedExecOptions{
		Command:     command,
		Args:        args,
		Cwd:         t.prop.Cwd,
		Environment: t.prop.Environment,
	})
	if err != nil {
		return exitcode, err
	}

	if exitcode != 0 {
		return exitcode, fmt.Errorf("command exited %d: %s", exitcode, stderr)
	}

	return exitcode, nil
}

// Info returns the current marker state for the command
func (t *Type) Info(_ context.Context) (any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ensure := model.EnsureAbsent
	if iu.FileExists(t.prop.Creates) {
		ensure = model.EnsurePresent
	}

	return &model.ScriptState{
		CommonResourceState: model.NewCommonResourceState(model.ResourceStatusScriptProtocol, model.ScriptTypeName, t.prop.Name, ensure),
		Creates:             t.prop.Creates,
	}, nil
}

func (t *Type) String() string {
	return fmt.Sprintf("%s#%s", model.ScriptTypeName, t.prop.Name)
}

// Type returns the resource type name
func (t *Type) Type() string {
	return model.ScriptTypeName
}

// Name returns the script name
func (t *Type) Name() string {
	return t.prop.Name
}

// Provider returns the name of the provider
func (t *Type) Provider() string {
	return ProviderName
}

// Properties returns the script resource properties
func (t *Type) Properties() model.ResourceProperties {
	return t.prop
}
