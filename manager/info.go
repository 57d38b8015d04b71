// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"context"
	"fmt"

	"github.com/stationctl/stationctl/model"
	caskresource "github.com/stationctl/stationctl/resources/cask"
	dotfileresource "github.com/stationctl/stationctl/resources/dotfile"
	gitconfigresource "github.com/stationctl/stationctl/resources/gitconfig"
	packageresource "github.com/stationctl/stationctl/resources/package"
	scriptresource "github.com/stationctl/stationctl/resources/script"
	sshkeyresource "github.com/stationctl/stationctl/resources/sshkey"
)

// ResourceInfo queries the current state of a named resource without
// applying anything
func (m *Station) ResourceInfo(ctx context.Context, typeName string, name string) (any, error) {
	common := model.CommonResourceProperties{
		Name:         name,
		Ensure:       model.EnsurePresent,
		SkipValidate: true,
	}

	var resource model.Resource
	var err error

	switch typeName {
	case model.PackageTypeName:
		resource, err = packageresource.New(ctx, m, model.PackageResourceProperties{CommonResourceProperties: common})
	case model.CaskTypeName:
		resource, err = caskresource.New(ctx, m, model.CaskResourceProperties{CommonResourceProperties: common})
	case model.ScriptTypeName:
		resource, err = scriptresource.New(ctx, m, model.ScriptResourceProperties{CommonResourceProperties: common, Creates: name})
	case model.DotfileTypeName:
		resource, err = dotfileresource.New(ctx, m, model.DotfileResourceProperties{CommonResourceProperties: common, Path: name})
	case model.GitConfigTypeName:
		resource, err = gitconfigresource.New(ctx, m, model.GitConfigResourceProperties{CommonResourceProperties: common})
	case model.SSHKeyTypeName:
		resource, err = sshkeyresource.New(ctx, m, model.SSHKeyResourceProperties{CommonResourceProperties: common, Path: name})
	default:
		return nil, fmt.Errorf("%w %s", model.ErrUnknownType, typeName)
	}
	if err != nil {
		return nil, err
	}

	return resource.Info(ctx)
}
