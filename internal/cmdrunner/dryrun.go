// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmdrunner

import (
	"context"
	"sync"

	"github.com/kballard/go-shellquote"

	"github.com/stationctl/stationctl/model"
)

// DryRunner is the mutation boundary in noop mode, it never invokes the
// underlying command, instead it records what would have run and reports
// synthetic success
type DryRunner struct {
	logger   model.Logger
	recorded []string

	mu sync.Mutex
}

// NewDryRunner creates a runner that records commands instead of executing them
func NewDryRunner(log model.Logger) (*DryRunner, error) {
	return &DryRunner{logger: log}, nil
}

func (d *DryRunner) ExecuteWithOptions(_ context.Context, opts model.ExtendedExecOptions) ([]byte, []byte, int, error) {
	line := shellquote.Join(append([]string{opts.Command}, opts.Args...)...)

	d.mu.Lock()
	d.recorded = append(d.recorded, line)
	d.mu.Unlock()

	d.logger.Info("Would run command", "command", line)

	return nil, nil, 0, nil
}

func (d *DryRunner) Execute(ctx context.Context, command string, args ...string) ([]byte, []byte, int, error) {
	return d.ExecuteWithOptions(ctx, model.ExtendedExecOptions{Command: command, Args: args})
}

// RecordedCommands returns the command lines that would have been executed, in order
func (d *DryRunner) RecordedCommands() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := make([]string, len(d.recorded))
	copy(res, d.recorded)

	return res
}
