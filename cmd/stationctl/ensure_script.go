// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	"github.com/stationctl/stationctl/model"
	scriptresource "github.com/stationctl/stationctl/resources/script"
)

type scriptCommand struct {
	name    string
	command string
	creates string
	cwd     string
	parent  *ensureCommand
}

func registerScriptCommand(app *fisk.CmdClause, parent *ensureCommand) {
	cmd := &scriptCommand{parent: parent}

	sc := app.Command("script", "One-shot bootstrap command management").Action(cmd.scriptAction)
	sc.Arg("name", "Script name").Required().StringVar(&cmd.name)
	sc.Arg("command", "Command line to run").Required().StringVar(&cmd.command)
	sc.Flag("creates", "Marker path, when it exists the command never runs again").Required().StringVar(&cmd.creates)
	sc.Flag("cwd", "Working directory for the command").StringVar(&cmd.cwd)
}

func (c *scriptCommand) scriptAction(_ *fisk.ParseContext) error {
	mgr, err := c.parent.manager()
	if err != nil {
		return err
	}

	sc, err := scriptresource.New(ctx, mgr, model.ScriptResourceProperties{
		CommonResourceProperties: model.CommonResourceProperties{
			Name:   c.name,
			Ensure: model.EnsurePresent,
		},
		Command: c.command,
		Creates: c.creates,
		Cwd:     c.cwd,
	})
	if err != nil {
		return err
	}

	status, err := sc.Apply(ctx)
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
