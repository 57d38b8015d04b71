// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	"github.com/stationctl/stationctl/model"
	caskresource "github.com/stationctl/stationctl/resources/cask"
)

type caskCommand struct {
	name    string
	ensure  string
	bundle  string
	noAdopt bool
	parent  *ensureCommand
}

func registerCaskCommand(app *fisk.CmdClause, parent *ensureCommand) {
	cmd := &caskCommand{parent: parent}

	cask := app.Command("cask", "GUI application management").Action(cmd.caskAction)
	cask.Arg("name", "Cask name to manage").Required().StringVar(&cmd.name)
	cask.Arg("ensure", "Ensure value").Default(model.EnsurePresent).StringVar(&cmd.ensure)
	cask.Flag("bundle", "Application bundle path when it differs from the mapped one").StringVar(&cmd.bundle)
	cask.Flag("no-adopt", "Never adopt a pre-existing unmanaged bundle").UnNegatableBoolVar(&cmd.noAdopt)
}

func (c *caskCommand) caskAction(_ *fisk.ParseContext) error {
	mgr, err := c.parent.manager()
	if err != nil {
		return err
	}

	adopt := !c.noAdopt

	cask, err := caskresource.New(ctx, mgr, model.CaskResourceProperties{
		CommonResourceProperties: model.CommonResourceProperties{
			Name:   c.name,
			Ensure: c.ensure,
		},
		Bundle: c.bundle,
		Adopt:  &adopt,
	})
	if err != nil {
		return err
	}

	status, err := cask.Apply(ctx)
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
