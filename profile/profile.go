// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package profile parses and executes provisioning profiles.
//
// A profile is a yaml document with an optional data section and a list of
// resources under station.resources, resources are resolved strictly in
// declared order and a failing resource never stops the run.
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	_ "embed"

	"github.com/goccy/go-yaml"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/santhosh-tekuri/jsonschema/v6"

	iu "github.com/stationctl/stationctl/internal/util"
	"github.com/stationctl/stationctl/metrics"
	"github.com/stationctl/stationctl/model"
	caskresource "github.com/stationctl/stationctl/resources/cask"
	dotfileresource "github.com/stationctl/stationctl/resources/dotfile"
	gitconfigresource "github.com/stationctl/stationctl/resources/gitconfig"
	packageresource "github.com/stationctl/stationctl/resources/package"
	scriptresource "github.com/stationctl/stationctl/resources/script"
	sshkeyresource "github.com/stationctl/stationctl/resources/sshkey"
	"github.com/stationctl/stationctl/templates"
)

//go:embed schema.json
var schemaBytes []byte

// Profile represents a parsed and validated profile ready for execution
type Profile struct {
	resources []map[string]model.ResourceProperties
	data      map[string]any

	mu sync.Mutex
}

var _ model.Profile = (*Profile)(nil)

func (p *Profile) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(p.toMap())
}

func (p *Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toMap())
}

func (p *Profile) toMap() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()

	return map[string]any{
		"resources": p.resources,
		"data":      p.data,
	}
}

// Resources returns the list of resources in the profile, in declared order
func (p *Profile) Resources() []map[string]model.ResourceProperties {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.resources
}

// Data returns the data associated with the profile
func (p *Profile) Data() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.data
}

// ParseProfileReader parses a profile document, validates it against the
// profile schema and resolves all templates in resource properties
func ParseProfileReader(r io.Reader, env *templates.Env, log model.Logger) (*Profile, error) {
	pb, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	err = yaml.Unmarshal(pb, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidProfile, err)
	}

	err = validateSchema(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidProfile, err)
	}

	if data, ok := raw["data"].(map[string]any); ok {
		if env.Data == nil {
			env.Data = data
		} else {
			env.Data = iu.DeepMergeMap(env.Data, data)
		}
	}

	station, ok := raw["station"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: no station section found", model.ErrInvalidProfile)
	}

	resources, ok := station["resources"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: resources must be an array got %T", model.ErrInvalidProfile, station["resources"])
	}

	res := &Profile{
		data: env.Data,
	}

	for i, resource := range resources {
		resourceMap, ok := resource.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: resources must be an array of maps got %T", model.ErrInvalidProfile, resource)
		}

		for typeName, v := range resourceMap {
			rawProperties, err := yaml.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("invalid profile resource %d: %w", i+1, err)
			}

			props, err := model.NewValidatedResourcePropertiesFromYaml(typeName, rawProperties, env)
			if err != nil {
				return nil, fmt.Errorf("invalid profile resource %d: %w", i+1, err)
			}

			for _, prop := range props {
				log.Debug("Parsed resource", "type", typeName, "name", prop.CommonProperties().Name)
				res.resources = append(res.resources, map[string]model.ResourceProperties{typeName: prop})
			}
		}
	}

	return res, nil
}

func validateSchema(raw map[string]any) error {
	compiler := jsonschema.NewCompiler()

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return err
	}

	err = compiler.AddResource("profile.json", doc)
	if err != nil {
		return err
	}

	schema, err := compiler.Compile("profile.json")
	if err != nil {
		return err
	}

	// round trip through json so numbers and nested maps match what the
	// validator expects
	jb, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(jb))
	if err != nil {
		return err
	}

	return schema.Validate(instance)
}

// Execute applies every resource in the profile in declared order, a failed
// resource is recorded and the run continues with the next one. A missing
// fatal prerequisite halts the run before any resource is attempted.
func (p *Profile) Execute(ctx context.Context, mgr model.Manager, userLog model.Logger) (model.SessionStore, error) {
	timer := prometheus.NewTimer(metrics.ProfileApplyTime.WithLabelValues())
	defer timer.ObserveDuration()

	session, err := mgr.StartSession(p)
	if err != nil {
		return nil, err
	}

	log, err := mgr.Logger("component", "profile")
	if err != nil {
		return nil, err
	}

	err = checkPrerequisites(ctx, mgr, userLog)
	if err != nil {
		return session, err
	}

	env, err := mgr.TemplateEnvironment(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range p.Resources() {
		for typeName, prop := range r {
			common := prop.CommonProperties()

			manage, reason, merr := shouldManage(common, env)
			if merr != nil {
				recordFailure(mgr, userLog, log, typeName, prop, merr)
				continue
			}

			if !manage {
				event := model.NewTransactionEvent(typeName, common.Name)
				event.Properties = prop
				event.Ensure = common.Ensure
				event.Skipped = true
				log.Debug("Control expression skipped resource", "type", typeName, "name", common.Name, "reason", reason)

				event.LogStatus(userLog)
				err = mgr.RecordEvent(event)
				if err != nil {
					log.Error("Could not save event", "event", event.String())
				}
				continue
			}

			resource, rerr := newResource(ctx, mgr, typeName, prop)
			if rerr != nil {
				recordFailure(mgr, userLog, log, typeName, prop, rerr)
				continue
			}

			event, aerr := resource.Apply(ctx)
			if aerr != nil {
				recordFailure(mgr, userLog, log, typeName, prop, aerr)
				continue
			}

			event.LogStatus(userLog)

			err = mgr.RecordEvent(event)
			if err != nil {
				log.Error("Could not save event", "event", event.String())
			}
		}
	}

	return session, nil
}

func recordFailure(mgr model.Manager, userLog model.Logger, log model.Logger, typeName string, prop model.ResourceProperties, ferr error) {
	common := prop.CommonProperties()

	event := model.NewTransactionEvent(typeName, common.Name)
	event.Properties = prop
	event.Ensure = common.Ensure
	event.Failed = true
	event.Error = ferr.Error()

	event.LogStatus(userLog)

	err := mgr.RecordEvent(event)
	if err != nil {
		log.Error("Could not save event", "event", event.String())
	}
}

// shouldManage evaluates the optional control expressions of a resource,
// if must hold and unless must not
func shouldManage(common *model.CommonResourceProperties, env *templates.Env) (bool, string, error) {
	if common.Control == nil {
		return true, "", nil
	}

	if common.Control.ManageIf != "" {
		ok, err := templates.EvalBool(common.Control.ManageIf, env)
		if err != nil {
			return false, "", fmt.Errorf("invalid if expression: %w", err)
		}
		if !ok {
			return false, fmt.Sprintf("if: %s", common.Control.ManageIf), nil
		}
	}

	if common.Control.ManageUnless != "" {
		ok, err := templates.EvalBool(common.Control.ManageUnless, env)
		if err != nil {
			return false, "", fmt.Errorf("invalid unless expression: %w", err)
		}
		if ok {
			return false, fmt.Sprintf("unless: %s", common.Control.ManageUnless), nil
		}
	}

	return true, "", nil
}

func newResource(ctx context.Context, mgr model.Manager, typeName string, prop model.ResourceProperties) (model.Resource, error) {
	switch rprop := prop.(type) {
	case *model.PackageResourceProperties:
		return packageresource.New(ctx, mgr, *rprop)
	case *model.CaskResourceProperties:
		return caskresource.New(ctx, mgr, *rprop)
	case *model.ScriptResourceProperties:
		return scriptresource.New(ctx, mgr, *rprop)
	case *model.DotfileResourceProperties:
		return dotfileresource.New(ctx, mgr, *rprop)
	case *model.GitConfigResourceProperties:
		return gitconfigresource.New(ctx, mgr, *rprop)
	case *model.SSHKeyResourceProperties:
		return sshkeyresource.New(ctx, mgr, *rprop)
	default:
		return nil, fmt.Errorf("unsupported resource property type %T", rprop)
	}
}

// checkPrerequisites verifies the developer tooling every later resource
// depends on. A missing prerequisite is fatal, its installer is interactive
// and spawns a GUI so the run halts with instructions instead
func checkPrerequisites(ctx context.Context, mgr model.Manager, userLog model.Logger) error {
	facts, err := mgr.Facts(ctx)
	if err != nil {
		return err
	}

	osName := ""
	if osFacts, ok := facts["os"].(map[string]any); ok {
		osName, _ = osFacts["name"].(string)
	}

	runner, err := mgr.NewRunner()
	if err != nil {
		return err
	}

	switch osName {
	case "darwin":
		to, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		_, _, exitcode, err := runner.Execute(to, "xcode-select", "-p")
		if err != nil || exitcode != 0 {
			userLog.Error("Command line developer tools are not installed")
			userLog.Error("Run 'xcode-select --install', complete the dialog and re-run this command")

			return fmt.Errorf("%w: command line developer tools", model.ErrPrerequisiteMissing)
		}

	default:
		_, found, err := iu.ExecutableInPath("git")
		if err != nil {
			return err
		}
		if !found {
			userLog.Error("git is not installed")
			userLog.Error("Install git with your distribution package manager and re-run this command")

			return fmt.Errorf("%w: git", model.ErrPrerequisiteMissing)
		}
	}

	return nil
}
