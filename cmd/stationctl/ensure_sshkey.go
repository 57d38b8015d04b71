// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	"github.com/stationctl/stationctl/model"
	sshkeyresource "github.com/stationctl/stationctl/resources/sshkey"
)

type sshKeyCommand struct {
	name    string
	path    string
	keyType string
	comment string
	bits    int
	confirm bool
	parent  *ensureCommand
}

func registerSSHKeyCommand(app *fisk.CmdClause, parent *ensureCommand) {
	cmd := &sshKeyCommand{parent: parent}

	key := app.Command("sshkey", "SSH key management").Action(cmd.sshKeyAction)
	key.Arg("path", "Absolute path to the private key").Required().StringVar(&cmd.path)
	key.Flag("name", "Resource name, defaults to the path").StringVar(&cmd.name)
	key.Flag("type", "Key type").Default(model.SSHKeyDefaultType).EnumVar(&cmd.keyType, "ed25519", "rsa", "ecdsa")
	key.Flag("comment", "Key comment").StringVar(&cmd.comment)
	key.Flag("bits", "Key size in bits").IntVar(&cmd.bits)
	key.Flag("confirm", "Ask before generating the key").UnNegatableBoolVar(&cmd.confirm)
}

func (c *sshKeyCommand) sshKeyAction(_ *fisk.ParseContext) error {
	mgr, err := c.parent.manager()
	if err != nil {
		return err
	}

	name := c.name
	if name == "" {
		name = c.path
	}

	key, err := sshkeyresource.New(ctx, mgr, model.SSHKeyResourceProperties{
		CommonResourceProperties: model.CommonResourceProperties{
			Name:   name,
			Ensure: model.EnsurePresent,
		},
		Path:    c.path,
		KeyType: c.keyType,
		Comment: c.comment,
		Bits:    c.bits,
		Confirm: c.confirm,
	})
	if err != nil {
		return err
	}

	status, err := key.Apply(ctx)
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
