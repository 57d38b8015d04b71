// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/stationctl/stationctl/model"
	"github.com/stationctl/stationctl/model/modelmocks"
)

func TestModel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Model")
}

var _ = Describe("TransactionEvent", func() {
	newEvent := func() *model.TransactionEvent {
		event := model.NewTransactionEvent("package", "zsh")
		event.Ensure = model.EnsurePresent
		event.Provider = "apt"

		return event
	}

	Describe("NewTransactionEvent", func() {
		It("Should set protocol, id and timestamp", func() {
			event := newEvent()
			Expect(event.Protocol).To(Equal(model.TransactionEventProtocol))
			Expect(event.EventID).ToNot(BeEmpty())
			Expect(event.TimeStamp).To(BeTemporally("~", time.Now(), time.Minute))
			Expect(event.ResourceType).To(Equal("package"))
			Expect(event.Name).To(Equal("zsh"))
		})
	})

	Describe("LogStatus", func() {
		var (
			mockctl *gomock.Controller
			logger  *modelmocks.MockLogger
		)

		BeforeEach(func() {
			mockctl = gomock.NewController(GinkgoT())
			logger = modelmocks.NewMockLogger(mockctl)
		})

		It("Should log failures as errors", func() {
			event := newEvent()
			event.Failed = true
			event.Error = "install failed"

			logger.EXPECT().Error("package#zsh failed", gomock.Any()).Times(1)
			event.LogStatus(logger)
		})

		It("Should log adoptions as warnings", func() {
			event := newEvent()
			event.Adopted = true
			event.Changed = true

			logger.EXPECT().Warn("package#zsh adopted", gomock.Any()).Times(1)
			event.LogStatus(logger)
		})

		It("Should log skips as info", func() {
			event := newEvent()
			event.Skipped = true
			event.DetectedVia = model.DetectedRegistry

			logger.EXPECT().Info("package#zsh skipped", gomock.Any()).Times(1)
			event.LogStatus(logger)
		})

		It("Should log changes as warnings", func() {
			event := newEvent()
			event.Changed = true

			logger.EXPECT().Warn("package#zsh changed", gomock.Any()).Times(1)
			event.LogStatus(logger)
		})

		It("Should log stable resources as info", func() {
			event := newEvent()

			logger.EXPECT().Info("package#zsh stable", gomock.Any()).Times(1)
			event.LogStatus(logger)
		})
	})
})

var _ = Describe("BuildSessionSummary", func() {
	It("Should count event outcomes", func() {
		changed := model.NewTransactionEvent("package", "zsh")
		changed.Changed = true
		changed.Duration = time.Second

		failed := model.NewTransactionEvent("package", "git")
		failed.Failed = true

		skipped := model.NewTransactionEvent("dotfile", ".zshrc")
		skipped.Skipped = true

		adopted := model.NewTransactionEvent("cask", "iterm2")
		adopted.Adopted = true
		adopted.Changed = true

		stable := model.NewTransactionEvent("gitconfig", "user.name")

		summary := model.BuildSessionSummary([]model.SessionEvent{
			model.NewSessionStartEvent(), changed, failed, skipped, adopted, stable,
		})

		Expect(summary.TotalResources).To(Equal(5))
		Expect(summary.UniqueResources).To(Equal(5))
		Expect(summary.ChangedResources).To(Equal(2))
		Expect(summary.FailedResources).To(Equal(1))
		Expect(summary.SkippedResources).To(Equal(1))
		Expect(summary.AdoptedResources).To(Equal(1))
		Expect(summary.StableResources).To(Equal(1))
		Expect(summary.TotalErrors).To(Equal(1))
	})

	It("Should count repeated resources once", func() {
		first := model.NewTransactionEvent("package", "zsh")
		second := model.NewTransactionEvent("package", "zsh")

		summary := model.BuildSessionSummary([]model.SessionEvent{first, second})
		Expect(summary.TotalResources).To(Equal(2))
		Expect(summary.UniqueResources).To(Equal(1))
	})

	It("Should compute the duration from start to last event", func() {
		start := model.NewSessionStartEvent()
		start.TimeStamp = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

		event := model.NewTransactionEvent("package", "zsh")
		event.TimeStamp = start.TimeStamp.Add(42 * time.Second)

		summary := model.BuildSessionSummary([]model.SessionEvent{start, event})
		Expect(summary.TotalDuration).To(Equal(42 * time.Second))
	})
})
