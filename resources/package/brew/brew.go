// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package brew

import (
	"context"
	"fmt"
	"strings"

	iu "github.com/stationctl/stationctl/internal/util"
	"github.com/stationctl/stationctl/model"
)

const ProviderName = "brew"

// binaryNames maps Homebrew formula names to the executable they put
// on PATH where the two differ, used by the on-PATH detection
var binaryNames = map[string]string{
	"ripgrep":             "rg",
	"the_silver_searcher": "ag",
	"fd":                  "fd",
	"neovim":              "nvim",
	"gnupg":               "gpg",
	"awscli":              "aws",
	"golang":              "go",
	"node":                "node",
	"coreutils":           "gls",
	"gnu-sed":             "gsed",
	"openjdk":             "java",
	"python":              "python3",
	"imagemagick":         "magick",
}

// Provider manages packages using the Homebrew package manager
type Provider struct {
	log     model.Logger
	runner  model.CommandRunner
	mutator model.CommandRunner
}

// NewBrewProvider creates a new Homebrew package provider, runner
// performs read-only queries while mutator performs state changing
// commands
func NewBrewProvider(log model.Logger, runner model.CommandRunner, mutator model.CommandRunner) (*Provider, error) {
	return &Provider{log: log, runner: runner, mutator: mutator}, nil
}

// Name returns the provider name
func (p *Provider) Name() string {
	return ProviderName
}

func (p *Provider) execute(ctx context.Context, runner model.CommandRunner, args ...string) (stdout []byte, stderr []byte, exitCode int, err error) {
	model.PackageGlobalLock.Lock()
	defer model.PackageGlobalLock.Unlock()

	return runner.ExecuteWithOptions(ctx, model.ExtendedExecOptions{
		Command: "brew",
		Args:    args,
		Environment: []string{
			"HOMEBREW_NO_AUTO_UPDATE=1",
			"HOMEBREW_NO_INSTALL_CLEANUP=1",
			"HOMEBREW_NO_ENV_HINTS=1",
		},
	})
}

func (p *Provider) Install(ctx context.Context, pkg string, version string) error {
	name := pkg
	switch version {
	case model.EnsurePresent, model.PackageEnsureLatest:
	default:
		// brew only keeps versioned formulae under name@version aliases
		name = fmt.Sprintf("%s@%s", pkg, version)
	}

	_, stderr, exitcode, err := p.execute(ctx, p.mutator, "install", "--quiet", name)
	if err != nil {
		return err
	}

	if exitcode != 0 {
		return fmt.Errorf("failed to install formula %q, brew exited %d: %s", pkg, exitcode, firstLine(stderr))
	}

	return nil
}

func (p *Provider) Upgrade(ctx context.Context, pkg string, version string) error {
	_, stderr, exitcode, err := p.execute(ctx, p.mutator, "upgrade", "--quiet", pkg)
	if err != nil {
		return err
	}

	if exitcode != 0 {
		return fmt.Errorf("failed to upgrade formula %q, brew exited %d: %s", pkg, exitcode, firstLine(stderr))
	}

	return nil
}

func (p *Provider) Downgrade(ctx context.Context, pkg string, version string) error {
	return fmt.Errorf("the %s provider does not support downgrading formulae", ProviderName)
}

func (p *Provider) Uninstall(ctx context.Context, pkg string) error {
	_, stderr, exitcode, err := p.execute(ctx, p.mutator, "uninstall", "--quiet", pkg)
	if err != nil {
		return fmt.Errorf("failed to uninstall %s: %w", pkg, err)
	}

	if exitcode != 0 {
		return fmt.Errorf("failed to uninstall %s: %s", pkg, firstLine(stderr))
	}

	return nil
}

// Status queries the local cellar, brew list exits non zero for
// formulae that are not installed
func (p *Provider) Status(ctx context.Context, pkg string) (*model.PackageState, error) {
	stdout, _, exitcode, err := p.execute(ctx, p.runner, "list", "--versions", baseName(pkg))
	if err != nil {
		return nil, err
	}

	parts := strings.Fields(strings.TrimSpace(string(stdout)))
	if exitcode != 0 || len(parts) < 2 {
		return &model.PackageState{
			CommonResourceState: model.NewCommonResourceState(model.ResourceStatusPackageProtocol, model.PackageTypeName, pkg, model.EnsureAbsent),
			Metadata: &model.PackageMetadata{
				Name:     pkg,
				Provider: ProviderName,
				Version:  "absent",
			},
		}, nil
	}

	// a formula can have several versions installed, brew lists them
	// oldest first so the last field is the active one
	version := parts[len(parts)-1]

	return &model.PackageState{
		CommonResourceState: model.NewCommonResourceState(model.ResourceStatusPackageProtocol, model.PackageTypeName, pkg, version),
		Metadata: &model.PackageMetadata{
			Name:     parts[0],
			Version:  version,
			Provider: ProviderName,
			Extended: map[string]any{
				"versions": parts[1:],
			},
		},
	}, nil
}

func (p *Provider) VersionCmp(versionA, versionB string, ignoreTrailingZeroes bool) (int, error) {
	return iu.VersionCmp(versionA, versionB, ignoreTrailingZeroes), nil
}

// BinaryName returns the executable a formula is expected to provide
func (p *Provider) BinaryName(pkg string) string {
	name := baseName(pkg)
	if binary, ok := binaryNames[name]; ok {
		return binary
	}

	return name
}

// baseName strips a @version suffix from a formula name
func baseName(pkg string) string {
	name, _, _ := strings.Cut(pkg, "@")
	return name
}

func firstLine(out []byte) string {
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return line
}
