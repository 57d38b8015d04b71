// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	"github.com/stationctl/stationctl/model"
	packageresource "github.com/stationctl/stationctl/resources/package"
)

type packageCommand struct {
	name     string
	ensure   string
	provider string
	binary   string
	parent   *ensureCommand
}

func registerPackageCommand(app *fisk.CmdClause, parent *ensureCommand) {
	cmd := &packageCommand{parent: parent}

	pkg := app.Command("package", "Package management").Alias("pkg").Action(cmd.packageAction)
	pkg.Arg("name", "Package name to manage").Required().StringVar(&cmd.name)
	pkg.Arg("ensure", "Ensure value").Default(model.EnsurePresent).StringVar(&cmd.ensure)
	pkg.Flag("provider", "Package provider").StringVar(&cmd.provider)
	pkg.Flag("binary", "Executable the package provides when it differs from the name").StringVar(&cmd.binary)
}

func (c *packageCommand) packageAction(_ *fisk.ParseContext) error {
	mgr, err := c.parent.manager()
	if err != nil {
		return err
	}

	pkg, err := packageresource.New(ctx, mgr, model.PackageResourceProperties{
		CommonResourceProperties: model.CommonResourceProperties{
			Name:     c.name,
			Ensure:   c.ensure,
			Provider: c.provider,
		},
		Binary: c.binary,
	})
	if err != nil {
		return err
	}

	status, err := pkg.Apply(ctx)
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
