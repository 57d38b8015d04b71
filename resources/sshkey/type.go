// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package sshkey

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	iu "github.com/stationctl/stationctl/internal/util"
	"github.com/stationctl/stationctl/model"
)

// ProviderName is the static provider backing sshkey resources
const ProviderName = "openssh"

// Type represents a SSH keypair that is generated when absent, an existing
// key file is never replaced
type Type struct {
	prop *model.SSHKeyResourceProperties
	mgr  model.Manager
	log  model.Logger

	mu sync.Mutex
}

var _ model.Resource = (*Type)(nil)

// New creates a new sshkey resource with the given properties
func New(ctx context.Context, mgr model.Manager, properties model.SSHKeyResourceProperties) (*Type, error) {
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

	logger, err := mgr.Logger("type", model.SSHKeyTypeName, "name", properties.Name)
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
	event := model.NewTransactionEvent(model.SSHKeyTypeName, t.prop.Name)
	event.Properties = t.prop
	event.Ensure = t.prop.Ensure
	event.Provider = ProviderName

	return event
}

// Apply generates the keypair unless the key file already exists, generation
// can be gated behind an interactive confirmation
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

func (t *Type) apply(ctx context.Context) (*model.SSHKeyState, bool, error) {
	var (
		properties   = t.prop
		noop         = t.mgr.NoopMode()
		noopMessage  string
		detectedVia  string
		refreshState bool
		declined     bool
	)

	exists := iu.FileExists(properties.Path)

	switch {
	case exists:
		t.log.Debug("Key already exists", "path", properties.Path)
		detectedVia = model.DetectedMarker

	default:
		if properties.Confirm {
			ok, err := t.mgr.Prompter().Confirm(fmt.Sprintf("Generate SSH key %s?", properties.Path), true)
			if err != nil {
				return nil, false, err
			}

			if !ok {
				t.log.Info("Key generation declined", "path", properties.Path)
				declined = true
				break
			}
		}

		t.log.Info("Generating key", "path", properties.Path, "key_type", t.keyType())
		if noop {
			noopMessage = "Would have generated key"
			refreshState = true
			break
		}

		err := t.generate(ctx)
		if err != nil {
			return nil, false, err
		}

		refreshState = true
	}

	state, err := t.currentState(ctx)
	if err != nil {
		return nil, false, err
	}

	if noop && refreshState {
		state.Ensure = model.EnsurePresent
		state.Exists = true
	}

	state.Noop = noop
	state.NoopMessage = noopMessage
	state.DetectedVia = detectedVia
	state.Stable = !refreshState
	state.Changed = refreshState

	return state, declined, nil
}

func (t *Type) keyType() string {
	if t.prop.KeyType == "" {
		return model.SSHKeyDefaultType
	}

	return t.prop.KeyType
}

func (t *Type) generate(ctx context.Context) error {
	mutator, err := t.mgr.MutationRunner()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(t.prop.Path), 0o700)
	if err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	args := []string{"-t", t.keyType(), "-f", t.prop.Path, "-N", ""}
	if t.prop.Comment != "" {
		args = append(args, "-C", t.prop.Comment)
	}
	if t.prop.Bits > 0 {
		args = append(args, "-b", strconv.Itoa(t.prop.Bits))
	}

	_, stderr, exitcode, err := mutator.Execute(ctx, "ssh-keygen", args...)
	if err != nil {
		return err
	}

	if exitcode != 0 {
		return fmt.Errorf("ssh-keygen exited %d: %s", exitcode, stderr)
	}

	return nil
}

func (t *Type) currentState(ctx context.Context) (*model.SSHKeyState, error) {
	ensure := model.EnsureAbsent
	exists := iu.FileExists(t.prop.Path)
	if exists {
		ensure = model.EnsurePresent
	}

	state := &model.SSHKeyState{
		CommonResourceState: model.NewCommonResourceState(model.ResourceStatusSSHKeyProtocol, model.SSHKeyTypeName, t.prop.Name, ensure),
		Path:                t.prop.Path,
		PublicPath:          t.prop.Path + ".pub",
		Exists:              exists,
	}

	if exists {
		runner, err := t.mgr.NewRunner()
		if err != nil {
			return nil, err
		}

		stdout, _, exitcode, err := runner.Execute(ctx, "ssh-keygen", "-l", "-f", t.prop.Path)
		if err == nil && exitcode == 0 {
			state.Fingerprint = strings.TrimSpace(string(stdout))
		}
	}

	return state, nil
}

// Info returns the current state of the keypair
func (t *Type) Info(ctx context.Context) (any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.currentState(ctx)
}

func (t *Type) String() string {
	return fmt.Sprintf("%s#%s", model.SSHKeyTypeName, t.prop.Name)
}

// Type returns the resource type name
func (t *Type) Type() string {
	return model.SSHKeyTypeName
}

// Name returns the key name
func (t *Type) Name() string {
	return t.prop.Name
}

// Provider returns the name of the provider
func (t *Type) Provider() string {
	return ProviderName
}

// Properties returns the sshkey resource properties
func (t *Type) Properties() model.ResourceProperties {
	return t.prop
}
