// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"github.com/stationctl/stationctl/metrics"
	"github.com/stationctl/stationctl/model"
)

func updateMetrics(event model.SessionEvent) {
	e, ok := event.(*model.TransactionEvent)
	if !ok {
		return
	}

	metrics.UpdateFromEvent(e)
}

func filterEvents(allEvents []model.SessionEvent, resourceType string, resourceName string) ([]model.TransactionEvent, error) {
	var filtered []model.TransactionEvent
	for _, event := range allEvents {
		txEvent, ok := event.(*model.TransactionEvent)
		if !ok {
			continue
		}

		if txEvent.ResourceType == resourceType && txEvent.Name == resourceName {
			filtered = append(filtered, *txEvent)
		}
	}

	return filtered, nil
}
