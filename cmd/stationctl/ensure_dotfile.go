// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/choria-io/fisk"

	"github.com/stationctl/stationctl/model"
	dotfileresource "github.com/stationctl/stationctl/resources/dotfile"
)

type dotfileCommand struct {
	name    string
	path    string
	ensure  string
	content string
	mode    string
	parent  *ensureCommand
}

func registerDotfileCommand(app *fisk.CmdClause, parent *ensureCommand) {
	cmd := &dotfileCommand{parent: parent}

	df := app.Command("dotfile", "Configuration file management").Action(cmd.dotfileAction)
	df.Arg("path", "Absolute path to the file").Required().StringVar(&cmd.path)
	df.Arg("ensure", "Ensure value").Default(model.EnsurePresent).StringVar(&cmd.ensure)
	df.Flag("name", "Resource name, defaults to the path").StringVar(&cmd.name)
	df.Flag("content", "File to read initial content from, - for stdin").StringVar(&cmd.content)
	df.Flag("mode", "Octal file mode").Default("0644").StringVar(&cmd.mode)
}

func (c *dotfileCommand) dotfileAction(_ *fisk.ParseContext) error {
	mgr, err := c.parent.manager()
	if err != nil {
		return err
	}

	name := c.name
	if name == "" {
		name = c.path
	}

	content := ""
	switch c.content {
	case "":
	case "-":
		cb, err := os.ReadFile("/dev/stdin")
		if err != nil {
			return err
		}
		content = string(cb)
	default:
		cb, err := os.ReadFile(c.content)
		if err != nil {
			return err
		}
		content = string(cb)
	}

	df, err := dotfileresource.New(ctx, mgr, model.DotfileResourceProperties{
		CommonResourceProperties: model.CommonResourceProperties{
			Name:   name,
			Ensure: c.ensure,
		},
		Path:    c.path,
		Content: content,
		Mode:    c.mode,
	})
	if err != nil {
		return err
	}

	status, err := df.Apply(ctx)
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
