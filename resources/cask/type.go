// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package cask

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stationctl/stationctl/internal/registry"
	iu "github.com/stationctl/stationctl/internal/util"
	"github.com/stationctl/stationctl/model"
)

// Type represents a cask resource that manages GUI application installation
type Type struct {
	prop     *model.CaskResourceProperties
	mgr      model.Manager
	log      model.Logger
	provider model.Provider
	facts    map[string]any
	data     map[string]any

	mu sync.Mutex
}

var _ model.Resource = (*Type)(nil)

// New creates a new cask resource with the given properties
func New(ctx context.Context, mgr model.Manager, properties model.CaskResourceProperties) (*Type, error) {
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

	logger, err := mgr.Logger("type", model.CaskTypeName, "name", properties.Name)
	if err != nil {
		return nil, err
	}

	t := &Type{
		prop:  &properties,
		mgr:   mgr,
		log:   logger,
		facts: env.Facts,
		data:  env.Data,
	}

	t.log.Debug("Created resource instance")

	return t, nil
}

func (t *Type) newTransactionEvent() *model.TransactionEvent {
	event := model.NewTransactionEvent(model.CaskTypeName, t.prop.Name)
	if t.prop != nil {
		event.Properties = t.prop
		event.Name = t.prop.Name
		event.Ensure = t.prop.Ensure
	}

	return event
}

// Apply resolves the cask resource against actual system state, adopting
// pre-existing unmanaged bundles rather than reinstalling them
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
		event.Adopted = state.Adopted
		event.Skipped = state.Stable && state.DetectedVia != ""
	}
	event.Provider = t.providerUnlocked()

	return event, nil
}

func (t *Type) apply(ctx context.Context) (*model.CaskState, error) {
	err := t.selectProvider()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.stringUnlocked(), err)
	}

	var (
		p            = t.provider.(CaskProvider)
		properties   = t.prop
		noop         = t.mgr.NoopMode()
		noopMessage  string
		detectedVia  string
		adopted      bool
		refreshState bool
	)

	initialStatus, err := p.Status(ctx, properties.Name)
	if err != nil {
		return nil, err
	}

	registered := initialStatus.Ensure != model.EnsureAbsent

	switch {
	case properties.Ensure == model.EnsureAbsent:
		if !registered {
			t.log.Debug("Cask already absent", "provider", p.Name())
			break
		}

		t.log.Info("Uninstalling cask", "provider", p.Name())
		if noop {
			noopMessage = "Would have uninstalled"
		}

		err = p.Uninstall(ctx, properties.Name)
		if err != nil {
			return nil, err
		}

		refreshState = true

	case registered:
		t.log.Debug("Cask already present", "version", initialStatus.Ensure, "provider", p.Name())
		detectedVia = model.DetectedRegistry

	default:
		bundle := t.bundlePath(p)
		bundleExists := bundle != "" && iu.IsDirectory(bundle)

		switch {
		case bundleExists && properties.AdoptEnabled():
			t.log.Info("Adopting existing application bundle", "bundle", bundle, "provider", p.Name())
			if noop {
				noopMessage = "Would have adopted existing bundle"
				adopted = true
				refreshState = true
				break
			}

			err = p.Install(ctx, properties.Name, true)
			if err != nil {
				// the application is there and working, a failed adoption
				// leaves it unmanaged rather than failing the resource
				t.log.Warn("Adoption failed, treating bundle as already installed", "bundle", bundle, "error", err.Error())
				detectedVia = model.DetectedBundle
				break
			}

			adopted = true
			refreshState = true

		case bundleExists:
			t.log.Info("Application bundle already present, skipping install", "bundle", bundle)
			detectedVia = model.DetectedBundle

		default:
			t.log.Info("Installing cask", "provider", p.Name())
			if noop {
				noopMessage = "Would have installed"
			}

			err = p.Install(ctx, properties.Name, false)
			if err != nil {
				return nil, err
			}

			refreshState = true
		}
	}

	finalStatus := initialStatus
	if refreshState && !noop {
		finalStatus, err = p.Status(ctx, properties.Name)
		if err != nil {
			return nil, err
		}

		if !t.isDesiredState(properties, finalStatus) {
			return nil, fmt.Errorf("failed to reach desired state %s", properties.Ensure)
		}
	}

	finalStatus.Noop = noop
	finalStatus.NoopMessage = noopMessage
	finalStatus.DetectedVia = detectedVia
	finalStatus.Adopted = adopted
	finalStatus.Stable = !refreshState
	if noop && refreshState {
		finalStatus.Changed = true
	} else {
		finalStatus.Changed = initialStatus.Ensure != finalStatus.Ensure
	}
	if finalStatus.BundlePath == "" {
		finalStatus.BundlePath = t.bundlePath(p)
	}

	return finalStatus, nil
}

func (t *Type) bundlePath(p CaskProvider) string {
	if t.prop.Bundle != "" {
		return t.prop.Bundle
	}

	return p.BundlePath(t.prop.Name)
}

func (t *Type) isDesiredState(properties *model.CaskResourceProperties, state *model.CaskState) bool {
	switch properties.Ensure {
	case model.EnsureAbsent:
		return state.Ensure == model.EnsureAbsent
	default:
		return state.Ensure != model.EnsureAbsent
	}
}

// Info returns the current status of the cask
func (t *Type) Info(ctx context.Context) (any, error) {
	err := t.selectProvider()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.String(), err)
	}

	return t.provider.(CaskProvider).Status(ctx, t.prop.Name)
}

func (t *Type) selectProvider() error {
	if t.provider != nil {
		return nil
	}

	runner, err := t.mgr.NewRunner()
	if err != nil {
		return err
	}

	mutator, err := t.mgr.MutationRunner()
	if err != nil {
		return err
	}

	provider, err := registry.FindSuitableProvider(model.CaskTypeName, t.prop.Provider, t.facts, t.log, runner, mutator)
	if err != nil {
		return err
	}

	t.log.Debug("Selected provider", "provider", provider.Name())
	t.provider = provider

	return nil
}

func (t *Type) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stringUnlocked()
}

func (t *Type) stringUnlocked() string {
	return fmt.Sprintf("%s#%s", model.CaskTypeName, t.prop.Name)
}

// Type returns the resource type name
func (t *Type) Type() string {
	return model.CaskTypeName
}

// Name returns the cask name
func (t *Type) Name() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.prop.Name
}

func (t *Type) providerUnlocked() string {
	if t.provider == nil {
		return ""
	}

	return t.provider.Name()
}

// Provider returns the name of the selected provider
func (t *Type) Provider() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.providerUnlocked()
}

// Properties returns the cask resource properties
func (t *Type) Properties() model.ResourceProperties {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.prop
}
