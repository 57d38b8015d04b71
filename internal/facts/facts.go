// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package facts

import (
	"context"
	"encoding/json"
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	iu "github.com/stationctl/stationctl/internal/util"
	"github.com/stationctl/stationctl/metrics"
	"github.com/stationctl/stationctl/model"
)

// StandardFacts returns a map of standard facts merged with any user supplied fact files
func StandardFacts(ctx context.Context, log model.Logger) (map[string]any, error) {
	timer := prometheus.NewTimer(metrics.FactGatherTime.WithLabelValues())
	defer timer.ObserveDuration()

	sf, err := standardFacts(ctx)
	if err != nil {
		return nil, err
	}

	userConfigDir := filepath.Join(xdg.ConfigHome, "stationctl")

	jf := filepath.Join(userConfigDir, "facts.json")
	yf := filepath.Join(userConfigDir, "facts.yaml")

	if iu.FileExists(jf) {
		log.Debug("Reading facts", "file", jf)
		jb, err := os.ReadFile(jf)
		if err != nil {
			log.Error("Failed to read facts file", "file", jf, "error", err)
		} else {
			var f map[string]any
			err = json.Unmarshal(jb, &f)
			if err != nil {
				log.Error("Failed to unmarshal facts file", "file", jf, "error", err)
			} else {
				sf = iu.DeepMergeMap(sf, f)
			}
		}
	}

	if iu.FileExists(yf) {
		log.Debug("Reading facts", "file", yf)
		yb, err := os.ReadFile(yf)
		if err == nil {
			var f map[string]any
			err = yaml.Unmarshal(yb, &f)
			if err != nil {
				log.Error("Failed to unmarshal facts file", "file", yf, "error", err)
			} else {
				sf = iu.DeepMergeMap(sf, f)
			}
		}
	}

	return sf, nil
}

func standardFacts(ctx context.Context) (map[string]any, error) {
	osFacts := map[string]any{
		"name": runtime.GOOS,
		"arch": runtime.GOARCH,
	}

	hi, err := host.InfoWithContext(ctx)
	if err == nil {
		osFacts["platform"] = hi.Platform
		osFacts["platform_family"] = hi.PlatformFamily
		osFacts["platform_version"] = hi.PlatformVersion
		osFacts["kernel_version"] = hi.KernelVersion
		osFacts["hostname"] = hi.Hostname
	}

	cpuFacts := map[string]any{}
	counts, err := cpu.CountsWithContext(ctx, true)
	if err == nil {
		cpuFacts["count"] = counts
	}

	memFacts := map[string]any{}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		memFacts["total"] = vm.Total
	}

	userFacts := map[string]any{}
	u, err := user.Current()
	if err == nil {
		userFacts["username"] = u.Username
		userFacts["name"] = u.Name
		userFacts["home"] = u.HomeDir
	}
	if home := os.Getenv("HOME"); home != "" {
		userFacts["home"] = home
	}
	userFacts["shell"] = os.Getenv("SHELL")

	return map[string]any{
		"os":     osFacts,
		"cpu":    cpuFacts,
		"memory": memFacts,
		"user":   userFacts,
	}, nil
}
