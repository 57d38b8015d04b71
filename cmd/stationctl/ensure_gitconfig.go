// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	"github.com/stationctl/stationctl/model"
	gitconfigresource "github.com/stationctl/stationctl/resources/gitconfig"
)

type gitConfigCommand struct {
	key    string
	value  string
	ensure string
	prompt string
	parent *ensureCommand
}

func registerGitConfigCommand(app *fisk.CmdClause, parent *ensureCommand) {
	cmd := &gitConfigCommand{parent: parent}

	gc := app.Command("gitconfig", "Global git configuration management").Action(cmd.gitConfigAction)
	gc.Arg("key", "Configuration key like user.email").Required().StringVar(&cmd.key)
	gc.Arg("value", "Desired value").StringVar(&cmd.value)
	gc.Flag("ensure", "Ensure value").Default(model.EnsurePresent).StringVar(&cmd.ensure)
	gc.Flag("prompt", "Question to ask when the key is absent").StringVar(&cmd.prompt)
}

func (c *gitConfigCommand) gitConfigAction(_ *fisk.ParseContext) error {
	mgr, err := c.parent.manager()
	if err != nil {
		return err
	}

	gc, err := gitconfigresource.New(ctx, mgr, model.GitConfigResourceProperties{
		CommonResourceProperties: model.CommonResourceProperties{
			Name:   c.key,
			Ensure: c.ensure,
		},
		Value:  c.value,
		Prompt: c.prompt,
	})
	if err != nil {
		return err
	}

	status, err := gc.Apply(ctx)
	if err != nil {
		return err
	}

	err = mgr.RecordEvent(status)
	if err != nil {
		return err
	}

	status.LogStatus(c.parent.out)

	return nil
}
