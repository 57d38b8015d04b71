// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package gitconfig

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stationctl/stationctl/model"
)

// ProviderName is the static provider backing gitconfig resources
const ProviderName = "git"

// Type represents a single entry in the global git configuration
type Type struct {
	prop *model.GitConfigResourceProperties
	mgr  model.Manager
	log  model.Logger

	mu sync.Mutex
}

var _ model.Resource = (*Type)(nil)

// New creates a new gitconfig resource with the given properties
func New(ctx context.Context, mgr model.Manager, properties model.GitConfigResourceProperties) (*Type, error) {
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

	logger, err := mgr.Logger("type", model.GitConfigTypeName, "name", properties.Name)
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
	event := model.NewTransactionEvent(model.GitConfigTypeName, t.prop.Name)
	event.Properties = t.prop
	event.Ensure = t.prop.Ensure
	event.Provider = ProviderName

	return event
}

// Apply sets the configuration entry unless it already holds the desired
// value, absent keys may be resolved interactively first
func (t *Type) Apply(ctx context.Context) (*model.TransactionEvent, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := t.newTransactionEvent()
	start := time.Now()

	state, declined, err := t.apply(ctx)
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
		event.Skipped = declined || (state.Stable && state.DetectedVia != "")
	}

	return event, nil
}

func (t *Type) apply(ctx context.Context) (*model.GitConfigState, bool, error) {
	var (
		properties   = t.prop
		noop         = t.mgr.NoopMode()
		noopMessage  string
		detectedVia  string
		refreshState bool
		declined     bool
	)

	current, present, err := t.currentValue(ctx)
	if err != nil {
		return nil, false, err
	}

	switch {
	case properties.Ensure == model.EnsureAbsent:
		if !present {
			t.log.Debug("Key already absent", "key", properties.Name)
			break
		}

		t.log.Info("Unsetting configuration key", "key", properties.Name)
		if noop {
			noopMessage = "Would have unset"
			refreshState = true
			break
		}

		err = t.unset(ctx)
		if err != nil {
			return nil, false, err
		}

		refreshState = true

	case present && (current == properties.Value || properties.Value == ""):
		t.log.Debug("Key already set", "key", properties.Name, "value", current)
		detectedVia = model.DetectedRegistry

	default:
		value := properties.Value
		if !present && properties.Prompt != "" {
			value, err = t.mgr.Prompter().Value(properties.Prompt, properties.Value)
			if err != nil {
				return nil, false, err
			}

			// an empty answer is a decline, the key stays unmanaged
			if value == "" {
				t.log.Info("Value prompt declined", "key", properties.Name)
				declined = true
				break
			}
		}

		t.log.Info("Setting configuration key", "key", properties.Name, "value", value)
		if noop {
			noopMessage = fmt.Sprintf("Would have set to %q", value)
			refreshState = true
			current = value
			break
		}

		err = t.set(ctx, value)
		if err != nil {
			return nil, false, err
		}

		current = value
		present = true
		refreshState = true
	}

	ensure := model.EnsureAbsent
	if present && !(noop && properties.Ensure == model.EnsureAbsent && refreshState) {
		ensure = model.EnsurePresent
	}
	if noop && refreshState && properties.Ensure != model.EnsureAbsent {
		ensure = model.EnsurePresent
	}

	state := &model.GitConfigState{
		CommonResourceState: model.NewCommonResourceState(model.ResourceStatusGitConfigProtocol, model.GitConfigTypeName, properties.Name, ensure),
		Key:                 properties.Name,
		Value:               current,
		Present:             ensure == model.EnsurePresent,
	}
	state.Noop = noop
	state.NoopMessage = noopMessage
	state.DetectedVia = detectedVia
	state.Stable = !refreshState
	state.Changed = refreshState

	return state, declined, nil
}

// currentValue reads the key from the global configuration, git exits 1
// for keys that are not set
func (t *Type) currentValue(ctx context.Context) (string, bool, error) {
	runner, err := t.mgr.NewRunner()
	if err != nil {
		return "", false, err
	}

	stdout, _, exitcode, err := runner.Execute(ctx, "git", "config", "--global", "--get", t.prop.Name)
	if err != nil {
		return "", false, err
	}

	if exitcode != 0 {
		return "", false, nil
	}

	return strings.TrimSpace(string(stdout)), true, nil
}

func (t *Type) set(ctx context.Context, value string) error {
	mutator, err := t.mgr.MutationRunner()
	if err != nil {
		return err
	}

	_, stderr, exitcode, err := mutator.Execute(ctx, "git", "config", "--global", t.prop.Name, value)
	if err != nil {
		return err
	}

	if exitcode != 0 {
		return fmt.Errorf("failed to set %s: %s", t.prop.Name, stderr)
	}

	return nil
}

func (t *Type) unset(ctx context.Context) error {
	mutator, err := t.mgr.MutationRunner()
	if err != nil {
		return err
	}

	_, stderr, exitcode, err := mutator.Execute(ctx, "git", "config", "--global", "--unset", t.prop.Name)
	if err != nil {
		return err
	}

	if exitcode != 0 {
		return fmt.Errorf("failed to unset %s: %s", t.prop.Name, stderr)
	}

	return nil
}

// Info returns the current value of the configuration key
func (t *Type) Info(ctx context.Context) (any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, present, err := t.currentValue(ctx)
	if err != nil {
		return nil, err
	}

	ensure := model.EnsureAbsent
	if present {
		ensure = model.EnsurePresent
	}

	return &model.GitConfigState{
		CommonResourceState: model.NewCommonResourceState(model.ResourceStatusGitConfigProtocol, model.GitConfigTypeName, t.prop.Name, ensure),
		Key:                 t.prop.Name,
		Value:               current,
		Present:             present,
	}, nil
}

func (t *Type) String() string {
	return fmt.Sprintf("%s#%s", model.GitConfigTypeName, t.prop.Name)
}

// Type returns the resource type name
func (t *Type) Type() string {
	return model.GitConfigTypeName
}

// Name returns the configuration key
func (t *Type) Name() string {
	return t.prop.Name
}

// Provider returns the name of the provider
func (t *Type) Provider() string {
	return ProviderName
}

// Properties returns the gitconfig resource properties
func (t *Type) Properties() model.ResourceProperties {
	return t.prop
}
