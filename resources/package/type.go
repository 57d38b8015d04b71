// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package packageresource

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stationctl/stationctl/internal/registry"
	iu "github.com/stationctl/stationctl/internal/util"
	"github.com/stationctl/stationctl/model"
)

// Type represents a package resource that manages software package installation
type Type struct {
	prop     *model.PackageResourceProperties
	mgr      model.Manager
	log      model.Logger
	provider model.Provider
	facts    map[string]any
	data     map[string]any

	mu sync.Mutex
}

const (
	// EnsurePresent indicates the package should be installed
	EnsurePresent = model.EnsurePresent
	// EnsureAbsent indicates the package should be removed
	EnsureAbsent = model.EnsureAbsent
	// EnsureLatest indicates the package should be upgraded to the latest version
	EnsureLatest = model.PackageEnsureLatest
)

var _ model.Resource = (*Type)(nil)

// New creates a new package resource with the given properties
func New(ctx context.Context, mgr model.Manager, properties model.PackageResourceProperties) (*Type, error) {
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

	logger, err := mgr.Logger("type", model.PackageTypeName, "name", properties.Name)
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

	err = t.validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", t.String(), model.ErrResourceInvalid, err)
	}

	t.log.Debug("Created resource instance")

	return t, nil
}

func (t *Type) newTransactionEvent() *model.TransactionEvent {
	event := model.NewTransactionEvent(model.PackageTypeName, t.prop.Name)
	if t.prop != nil {
		event.Properties = t.prop
		event.Name = t.prop.Name
		event.Ensure = t.prop.Ensure
	}

	return event
}

// Apply resolves the package resource against actual system state, acting only when no detector is satisfied
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
	event.Provider = t.providerUnlocked()

	return event, nil
}

// apply runs the read-only detectors in priority order, registry membership
// before binary on PATH, and performs the install action only after both
// came up empty
func (t *Type) apply(ctx context.Context) (*model.PackageState, error) {
	err := t.selectProvider()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.stringUnlocked(), err)
	}

	var (
		initialStatus *model.PackageState
		finalStatus   *model.PackageState
		refreshState  bool
		p             = t.provider.(PackageProvider)
		properties    = t.prop
		noop          = t.mgr.NoopMode()
		noopMessage   string
		detectedVia   string
	)

	initialStatus, err = p.Status(ctx, properties.Name)
	if err != nil {
		return nil, err
	}

	registered := initialStatus.Ensure != EnsureAbsent
	if registered {
		detectedVia = model.DetectedRegistry
	}

	switch {
	case properties.Ensure == "":
		return nil, fmt.Errorf("invalid value for ensure")

	case properties.Ensure == EnsureAbsent:
		if !registered {
			t.log.Debug("Package already absent", "provider", p.Name())
			break
		}

		detectedVia = ""
		t.log.Info("Uninstalling package", "version", initialStatus.Ensure, "provider", p.Name(), "ensure", properties.Ensure)
		if noop {
			noopMessage = "Would have uninstalled"
		}

		err = p.Uninstall(ctx, properties.Name)
		if err != nil {
			return nil, err
		}

		refreshState = true

	case registered:
		err = t.applyRegistered(ctx, p, initialStatus, &refreshState, &noopMessage, noop)
		if err != nil {
			return nil, err
		}
		if refreshState {
			detectedVia = ""
		}

	default:
		// not in the package registry, a matching binary on PATH still
		// satisfies the desired state for non version pinned installs
		binary := t.binaryName(p)
		path, found, _ := iu.ExecutableInPath(binary)
		if found && (properties.Ensure == EnsurePresent || properties.Ensure == EnsureLatest) {
			t.log.Info("Binary already on PATH, skipping install", "binary", binary, "path", path)
			detectedVia = model.DetectedPath
			break
		}

		t.log.Info("Installing package", "provider", p.Name(), "ensure", properties.Ensure)
		if noop {
			noopMessage = fmt.Sprintf("Would have installed %s", properties.Ensure)
		}

		err = p.Install(ctx, properties.Name, properties.Ensure)
		if err != nil {
			return nil, err
		}

		refreshState = true
	}

	if refreshState && !noop {
		finalStatus, err = p.Status(ctx, properties.Name)
		if err != nil {
			return nil, err
		}
	} else {
		finalStatus = initialStatus
	}

	if !noop && refreshState {
		if !t.isDesiredState(properties, finalStatus) {
			return nil, fmt.Errorf("failed to reach desired state %s", properties.Ensure)
		}
	}

	finalStatus.Noop = noop
	finalStatus.NoopMessage = noopMessage
	finalStatus.DetectedVia = detectedVia
	finalStatus.Stable = !refreshState
	if noop && refreshState {
		finalStatus.Changed = true
	} else {
		finalStatus.Changed = initialStatus.Ensure != finalStatus.Ensure
	}

	return finalStatus, nil
}

// applyRegistered handles version pinned desired states for packages the registry already knows
func (t *Type) applyRegistered(ctx context.Context, p PackageProvider, initialStatus *model.PackageState, refreshState *bool, noopMessage *string, noop bool) error {
	properties := t.prop

	switch properties.Ensure {
	case EnsurePresent, EnsureLatest:
		t.log.Debug("Package already present", "version", initialStatus.Ensure, "provider", p.Name(), "ensure", properties.Ensure)
		return nil

	default:
		cmp, err := p.VersionCmp(initialStatus.Ensure, properties.Ensure, false)
		if err != nil {
			return err
		}

		switch cmp {
		case 0:
			t.log.Debug("Package already at requested version", "version", initialStatus.Ensure, "provider", p.Name())

		case -1:
			t.log.Info("Upgrading package", "version", initialStatus.Ensure, "provider", p.Name(), "ensure", properties.Ensure)
			if noop {
				*noopMessage = fmt.Sprintf("Would have upgraded to %s", properties.Ensure)
			}

			err = p.Upgrade(ctx, properties.Name, properties.Ensure)
			if err != nil {
				return err
			}

			*refreshState = true

		case 1:
			t.log.Info("Downgrading package", "version", initialStatus.Ensure, "provider", p.Name(), "ensure", properties.Ensure)
			if noop {
				*noopMessage = fmt.Sprintf("Would have downgraded to %s", properties.Ensure)
			}

			err = p.Downgrade(ctx, properties.Name, properties.Ensure)
			if err != nil {
				return err
			}

			*refreshState = true
		}

		return nil
	}
}

func (t *Type) binaryName(p PackageProvider) string {
	if t.prop.Binary != "" {
		return t.prop.Binary
	}

	return p.BinaryName(t.prop.Name)
}

func (t *Type) isDesiredState(properties *model.PackageResourceProperties, state *model.PackageState) bool {
	switch properties.Ensure {
	case EnsurePresent: // anything but absent is ok
		return state.Ensure != EnsureAbsent

	case EnsureAbsent: // only absent is ok
		return state.Ensure == EnsureAbsent

	case EnsureLatest: // we dont really know if its latest, OS can lie about it, so we check absent
		return state.Ensure != EnsureAbsent

	default:
		cmp, err := t.provider.(PackageProvider).VersionCmp(state.Ensure, properties.Ensure, false)
		if err == nil && cmp == 0 {
			return true
		}
	}

	return false
}

// Info returns the current status of the package
func (t *Type) Info(ctx context.Context) (any, error) {
	err := t.selectProvider()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.String(), err)
	}

	return t.provider.(PackageProvider).Status(ctx, t.prop.Name)
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

	provider, err := registry.FindSuitableProvider(model.PackageTypeName, t.prop.Provider, t.facts, t.log, runner, mutator)
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
	return fmt.Sprintf("%s#%s", model.PackageTypeName, t.prop.Name)
}

func (t *Type) validate() error {
	return t.prop.Validate()
}

// Type returns the resource type name
func (t *Type) Type() string {
	return model.PackageTypeName
}

// Name returns the package name
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

// Properties returns the package resource properties
func (t *Type) Properties() model.ResourceProperties {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.prop
}
