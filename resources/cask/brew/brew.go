// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package brew

import (
	"context"
	"fmt"
	"strings"

	"github.com/stationctl/stationctl/model"
)

const ProviderName = "brew"

// bundlePaths maps cask names to the application bundle they install
// where the bundle name is not simply the title cased cask name
var bundlePaths = map[string]string{
	"iterm2":             "/Applications/iTerm.app",
	"visual-studio-code": "/Applications/Visual Studio Code.app",
	"google-chrome":      "/Applications/Google Chrome.app",
	"firefox":            "/Applications/Firefox.app",
	"slack":              "/Applications/Slack.app",
	"docker":             "/Applications/Docker.app",
	"rectangle":          "/Applications/Rectangle.app",
	"spotify":            "/Applications/Spotify.app",
	"1password":          "/Applications/1Password.app",
	"alacritty":          "/Applications/Alacritty.app",
	"obsidian":           "/Applications/Obsidian.app",
	"raycast":            "/Applications/Raycast.app",
	"zoom":               "/Applications/zoom.us.app",
	"wezterm":            "/Applications/WezTerm.app",
}

// Provider manages GUI applications using Homebrew casks
type Provider struct {
	log     model.Logger
	runner  model.CommandRunner
	mutator model.CommandRunner
}

// NewBrewCaskProvider creates a new Homebrew cask provider, runner
// performs read-only queries while mutator performs state changing
// commands
func NewBrewCaskProvider(log model.Logger, runner model.CommandRunner, mutator model.CommandRunner) (*Provider, error) {
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

func (p *Provider) Install(ctx context.Context, cask string, adopt bool) error {
	args := []string{"install", "--cask", "--quiet"}
	if adopt {
		args = append(args, "--adopt")
	}
	args = append(args, cask)

	_, stderr, exitcode, err := p.execute(ctx, p.mutator, args...)
	if err != nil {
		return err
	}

	if exitcode != 0 {
		return fmt.Errorf("failed to install cask %q, brew exited %d: %s", cask, exitcode, firstLine(stderr))
	}

	return nil
}

func (p *Provider) Uninstall(ctx context.Context, cask string) error {
	_, stderr, exitcode, err := p.execute(ctx, p.mutator, "uninstall", "--cask", "--quiet", cask)
	if err != nil {
		return fmt.Errorf("failed to uninstall %s: %w", cask, err)
	}

	if exitcode != 0 {
		return fmt.Errorf("failed to uninstall %s: %s", cask, firstLine(stderr))
	}

	return nil
}

// Status queries the cask registry, brew list exits non zero for casks
// that are not installed
func (p *Provider) Status(ctx context.Context, cask string) (*model.CaskState, error) {
	stdout, _, exitcode, err := p.execute(ctx, p.runner, "list", "--cask", "--versions", cask)
	if err != nil {
		return nil, err
	}

	parts := strings.Fields(strings.TrimSpace(string(stdout)))
	if exitcode != 0 || len(parts) < 2 {
		return &model.CaskState{
			CommonResourceState: model.NewCommonResourceState(model.ResourceStatusCaskProtocol, model.CaskTypeName, cask, model.EnsureAbsent),
			Metadata: &model.PackageMetadata{
				Name:     cask,
				Provider: ProviderName,
				Version:  "absent",
			},
		}, nil
	}

	version := parts[len(parts)-1]

	return &model.CaskState{
		CommonResourceState: model.NewCommonResourceState(model.ResourceStatusCaskProtocol, model.CaskTypeName, cask, version),
		BundlePath:          p.BundlePath(cask),
		Metadata: &model.PackageMetadata{
			Name:     parts[0],
			Version:  version,
			Provider: ProviderName,
		},
	}, nil
}

// BundlePath returns the application bundle a cask installs, falling
// back to a title cased bundle under /Applications for unmapped casks
func (p *Provider) BundlePath(cask string) string {
	if path, ok := bundlePaths[cask]; ok {
		return path
	}

	words := strings.Split(cask, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return fmt.Sprintf("/Applications/%s.app", strings.Join(words, " "))
}

func firstLine(out []byte) string {
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return line
}
