// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	"github.com/stationctl/stationctl/model"
)

type ensureCommand struct {
	session     string
	noop        bool
	interactive bool
	out         model.Logger
}

func registerEnsureCommand(app *fisk.Application) {
	cmd := &ensureCommand{}

	ens := app.Command("ensure", "Manage individual resources")
	ens.Flag("session", "Session store to use").Envar("STATIONCTL_SESSION_STORE").PlaceHolder("DIRECTORY").StringVar(&cmd.session)
	ens.Flag("noop", "Resolve the resource but never mutate the system").UnNegatableBoolVar(&cmd.noop)
	ens.Flag("interactive", "Ask interactive questions rather than assuming defaults").UnNegatableBoolVar(&cmd.interactive)

	registerPackageCommand(ens, cmd)
	registerCaskCommand(ens, cmd)
	registerDotfileCommand(ens, cmd)
	registerGitConfigCommand(ens, cmd)
	registerSSHKeyCommand(ens, cmd)
	registerScriptCommand(ens, cmd)
}

func (cmd *ensureCommand) manager() (model.Manager, error) {
	mgr, out, err := newManager(cmd.session, cmd.noop, cmd.interactive, nil)
	if err != nil {
		return nil, err
	}

	cmd.out = out

	return mgr, nil
}
