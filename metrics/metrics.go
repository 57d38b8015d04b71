// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stationctl/stationctl/model"
)

var (
	NameSpace = "stationctl"
	Subsystem = "provision"

	// ProfileApplyTime is a summary of the time taken to apply an entire profile
	ProfileApplyTime = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "profile_apply_duration_seconds"),
		Help: "Time taken to apply an entire profile",
	}, []string{})

	// ResourceApplyTime is a summary of the time taken to apply a particular resource
	ResourceApplyTime = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "resource_apply_duration_seconds"),
		Help: "Time taken to apply a particular resource",
	}, []string{"type", "provider", "name"})

	// FactGatherTime is a summary of the time taken to gather system facts
	FactGatherTime = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "fact_gather_duration_seconds"),
		Help: "Time taken to gather system facts",
	}, []string{})

	// ResourceStateChanged counts how many resources were changed
	ResourceStateChanged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "resource_state_changed_count"),
		Help: "How many resources were changed",
	}, []string{"type", "name"})

	// ResourceStateAdopted counts how many resources were adopted from unmanaged installs
	ResourceStateAdopted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "resource_state_adopted_count"),
		Help: "How many resources were adopted from unmanaged installs",
	}, []string{"type", "name"})

	// ResourceStateFailed counts how many resources failed
	ResourceStateFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "resource_state_failed_count"),
		Help: "How many resources failed",
	}, []string{"type", "name"})

	// ResourceStateSkipped counts how many resources were skipped
	ResourceStateSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "resource_state_skipped_count"),
		Help: "How many resources were skipped",
	}, []string{"type", "name"})

	// ResourceStateNoop counts how many resources were applied in noop mode
	ResourceStateNoop = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "resource_state_noop_count"),
		Help: "How many resources were applied in noop mode",
	}, []string{"type", "name"})
)

func init() {
	prometheus.MustRegister(ProfileApplyTime)
	prometheus.MustRegister(ResourceApplyTime)
	prometheus.MustRegister(FactGatherTime)
	prometheus.MustRegister(ResourceStateChanged)
	prometheus.MustRegister(ResourceStateAdopted)
	prometheus.MustRegister(ResourceStateFailed)
	prometheus.MustRegister(ResourceStateSkipped)
	prometheus.MustRegister(ResourceStateNoop)
}

// UpdateFromEvent updates the per outcome counters from a transaction event
func UpdateFromEvent(event *model.TransactionEvent) {
	labels := []string{event.ResourceType, event.Name}

	switch {
	case event.Failed:
		ResourceStateFailed.WithLabelValues(labels...).Inc()
	case event.Adopted:
		ResourceStateAdopted.WithLabelValues(labels...).Inc()
	case event.Skipped:
		ResourceStateSkipped.WithLabelValues(labels...).Inc()
	case event.Changed:
		ResourceStateChanged.WithLabelValues(labels...).Inc()
	}

	if event.Noop {
		ResourceStateNoop.WithLabelValues(labels...).Inc()
	}

	ResourceApplyTime.WithLabelValues(event.ResourceType, event.Provider, event.Name).Observe(event.Duration.Seconds())
}
