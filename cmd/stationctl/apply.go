// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/choria-io/fisk"
	"github.com/goccy/go-yaml"

	"github.com/stationctl/stationctl/model"
)

type applyCommand struct {
	profile     string
	session     string
	noop        bool
	interactive bool
	renderOnly  bool
	report      bool
	gitName     string
	gitEmail    string
}

func registerApplyCommand(app *fisk.Application) {
	cmd := &applyCommand{}

	apply := app.Command("apply", "Apply a provisioning profile").Action(cmd.applyAction)
	apply.Arg("profile", "Path to the profile to apply").Required().ExistingFileVar(&cmd.profile)
	apply.Flag("noop", "Resolve every resource but never mutate the system").UnNegatableBoolVar(&cmd.noop)
	apply.Flag("interactive", "Ask interactive questions rather than assuming defaults").UnNegatableBoolVar(&cmd.interactive)
	apply.Flag("session", "Session store to use").Envar("STATIONCTL_SESSION_STORE").PlaceHolder("DIRECTORY").StringVar(&cmd.session)
	apply.Flag("render", "Do not apply, only render the resolved profile").UnNegatableBoolVar(&cmd.renderOnly)
	apply.Flag("report", "Generate a report").Default("true").BoolVar(&cmd.report)
	apply.Flag("git-name", "Overrides the git user name in profile data").StringVar(&cmd.gitName)
	apply.Flag("git-email", "Overrides the git user email in profile data").StringVar(&cmd.gitEmail)
}

func (c *applyCommand) applyAction(_ *fisk.ParseContext) error {
	profile, err := os.Open(c.profile)
	if err != nil {
		return err
	}

	facts := map[string]any{}
	git := map[string]any{}
	if c.gitName != "" {
		git["name"] = c.gitName
	}
	if c.gitEmail != "" {
		git["email"] = c.gitEmail
	}
	if len(git) > 0 {
		facts["git"] = git
	}

	mgr, out, err := newManager(c.session, c.noop, c.interactive, facts)
	if err != nil {
		return err
	}

	_, parsed, err := mgr.ResolveProfileReader(ctx, profile)
	if err != nil {
		return err
	}

	if c.renderOnly {
		resolvedYaml, err := yaml.Marshal(parsed)
		if err != nil {
			return err
		}

		fmt.Println(string(resolvedYaml))

		return nil
	}

	_, err = mgr.ApplyProfile(ctx, parsed)
	if err != nil {
		// the operator was already told how to install the prerequisite,
		// this is an expected stop rather than a failure
		if errors.Is(err, model.ErrPrerequisiteMissing) {
			out.Warn("Run halted, re-run once the prerequisite is installed")
			return nil
		}

		return err
	}

	if c.report {
		summary, err := mgr.SessionSummary()
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println("Profile Run Summary")
		fmt.Println()
		fmt.Printf("           Run Time: %v\n", summary.TotalDuration.Round(time.Millisecond))
		fmt.Printf("    Total Resources: %d\n", summary.TotalResources)
		fmt.Printf("   Stable Resources: %d\n", summary.StableResources)
		fmt.Printf("  Changed Resources: %d\n", summary.ChangedResources)
		fmt.Printf("  Adopted Resources: %d\n", summary.AdoptedResources)
		fmt.Printf("  Skipped Resources: %d\n", summary.SkippedResources)
		fmt.Printf("   Failed Resources: %d\n", summary.FailedResources)
		fmt.Printf("       Total Errors: %d\n", summary.TotalErrors)
	}

	return nil
}
