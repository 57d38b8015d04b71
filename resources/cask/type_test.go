// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package cask

import (
	"context"
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/stationctl/stationctl/internal/registry"
	"github.com/stationctl/stationctl/model"
	"github.com/stationctl/stationctl/model/modelmocks"
	"github.com/stationctl/stationctl/templates"
)

func TestCaskResource(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Types/Cask")
}

var _ = Describe("Cask Type", func() {
	var (
		facts    = make(map[string]any)
		data     = make(map[string]any)
		mgr      *modelmocks.MockManager
		logger   *modelmocks.MockLogger
		runner   *modelmocks.MockCommandRunner
		mockctl  *gomock.Controller
		provider *MockCaskProvider
	)

	absentState := func() *model.CaskState {
		return &model.CaskState{CommonResourceState: model.CommonResourceState{Name: "iterm2", Ensure: model.EnsureAbsent}}
	}
	installedState := func() *model.CaskState {
		return &model.CaskState{CommonResourceState: model.CommonResourceState{Name: "iterm2", Ensure: "3.5.0"}}
	}

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		mgr, logger = modelmocks.NewManager(facts, data, mockctl)
		runner = modelmocks.NewMockCommandRunner(mockctl)
		mgr.EXPECT().NewRunner().AnyTimes().Return(runner, nil)
		mgr.EXPECT().MutationRunner().AnyTimes().Return(runner, nil)
		mgr.EXPECT().NoopMode().AnyTimes().Return(false)
		mgr.EXPECT().TemplateEnvironment(gomock.Any()).AnyTimes().Return(&templates.Env{Facts: facts, Data: data}, nil)
		provider = NewMockCaskProvider(mockctl)

		provider.EXPECT().Name().Return("mock").AnyTimes()
		logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
		logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	})

	Describe("New", func() {
		It("Should validate properties", func(ctx context.Context) {
			_, err := New(ctx, mgr, model.CaskResourceProperties{})
			Expect(err).To(MatchError(model.ErrResourceNameRequired))
		})
	})

	Context("with a prepared provider", func() {
		var cask *Type
		var err error

		BeforeEach(func(ctx context.Context) {
			factory := modelmocks.NewMockProviderFactory(mockctl)
			factory.EXPECT().Name().Return("test").AnyTimes()
			factory.EXPECT().TypeName().Return(model.CaskTypeName).AnyTimes()
			factory.EXPECT().IsManageable(facts).Return(true, 1, nil).AnyTimes()
			factory.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(func(log model.Logger, runner model.CommandRunner, mutator model.CommandRunner) (model.Provider, error) {
				return provider, nil
			})

			cask, err = New(ctx, mgr, model.CaskResourceProperties{
				CommonResourceProperties: model.CommonResourceProperties{
					Name:     "iterm2",
					Ensure:   model.EnsurePresent,
					Provider: "test",
				},
			})
			Expect(err).ToNot(HaveOccurred())

			registry.Clear()
			registry.MustRegister(factory)
		})

		Describe("Apply", func() {
			It("Should skip via the registry detector when already installed", func(ctx context.Context) {
				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(installedState(), nil)
				provider.EXPECT().BundlePath("iterm2").Return("/Applications/iTerm.app").AnyTimes()

				event, err := cask.Apply(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(event.Changed).To(BeFalse())
				Expect(event.Skipped).To(BeTrue())
				Expect(event.Adopted).To(BeFalse())
				Expect(event.DetectedVia).To(Equal(model.DetectedRegistry))
			})

			It("Should install when absent with no bundle on disk", func(ctx context.Context) {
				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(absentState(), nil)
				provider.EXPECT().BundlePath("iterm2").Return("/nonexistent/iTerm.app").AnyTimes()
				provider.EXPECT().Install(gomock.Any(), "iterm2", false).Return(nil)
				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(installedState(), nil)

				event, err := cask.Apply(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(event.Changed).To(BeTrue())
				Expect(event.Skipped).To(BeFalse())
				Expect(event.Adopted).To(BeFalse())
				Expect(event.ActualEnsure).To(Equal("3.5.0"))
			})

			It("Should adopt a pre-existing bundle", func(ctx context.Context) {
				cask.prop.Bundle = GinkgoT().TempDir()

				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(absentState(), nil)
				provider.EXPECT().Install(gomock.Any(), "iterm2", true).Return(nil)
				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(installedState(), nil)

				event, err := cask.Apply(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(event.Changed).To(BeTrue())
				Expect(event.Adopted).To(BeTrue())
				Expect(event.Failed).To(BeFalse())
			})

			It("Should degrade to the bundle detector when adoption fails", func(ctx context.Context) {
				cask.prop.Bundle = GinkgoT().TempDir()

				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(absentState(), nil)
				provider.EXPECT().Install(gomock.Any(), "iterm2", true).Return(fmt.Errorf("adoption not supported"))

				event, err := cask.Apply(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(event.Failed).To(BeFalse())
				Expect(event.Changed).To(BeFalse())
				Expect(event.Skipped).To(BeTrue())
				Expect(event.Adopted).To(BeFalse())
				Expect(event.DetectedVia).To(Equal(model.DetectedBundle))
			})

			It("Should skip via the bundle detector when adoption is disabled", func(ctx context.Context) {
				adopt := false
				cask.prop.Bundle = GinkgoT().TempDir()
				cask.prop.Adopt = &adopt

				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(absentState(), nil)
				// no Install call expected

				event, err := cask.Apply(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(event.Changed).To(BeFalse())
				Expect(event.Skipped).To(BeTrue())
				Expect(event.DetectedVia).To(Equal(model.DetectedBundle))
			})

			It("Should uninstall when ensure is absent", func(ctx context.Context) {
				cask.prop.Ensure = model.EnsureAbsent

				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(installedState(), nil)
				provider.EXPECT().Uninstall(gomock.Any(), "iterm2").Return(nil)
				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(absentState(), nil)
				provider.EXPECT().BundlePath("iterm2").Return("/nonexistent/iTerm.app").AnyTimes()

				event, err := cask.Apply(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(event.Changed).To(BeTrue())
				Expect(event.Failed).To(BeFalse())
			})

			It("Should fail the event when install fails", func(ctx context.Context) {
				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(absentState(), nil)
				provider.EXPECT().BundlePath("iterm2").Return("/nonexistent/iTerm.app").AnyTimes()
				provider.EXPECT().Install(gomock.Any(), "iterm2", false).Return(fmt.Errorf("install failed"))

				event, err := cask.Apply(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(event.Failed).To(BeTrue())
				Expect(event.Error).To(ContainSubstring("install failed"))
			})

			It("Should fail when the desired state is not reached", func(ctx context.Context) {
				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(absentState(), nil)
				provider.EXPECT().BundlePath("iterm2").Return("/nonexistent/iTerm.app").AnyTimes()
				provider.EXPECT().Install(gomock.Any(), "iterm2", false).Return(nil)
				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(absentState(), nil)

				event, err := cask.Apply(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(event.Failed).To(BeTrue())
				Expect(event.Error).To(ContainSubstring("failed to reach desired state"))
			})
		})

		Describe("Apply in noop mode", func() {
			var noopCask *Type

			BeforeEach(func(ctx context.Context) {
				noopMgr, _ := modelmocks.NewManager(facts, data, mockctl)
				noopMgr.EXPECT().NewRunner().AnyTimes().Return(runner, nil)
				noopMgr.EXPECT().MutationRunner().AnyTimes().Return(runner, nil)
				noopMgr.EXPECT().NoopMode().AnyTimes().Return(true)
				noopMgr.EXPECT().TemplateEnvironment(gomock.Any()).AnyTimes().Return(&templates.Env{Facts: facts, Data: data}, nil)

				noopCask, err = New(ctx, noopMgr, model.CaskResourceProperties{
					CommonResourceProperties: model.CommonResourceProperties{
						Name:     "iterm2",
						Ensure:   model.EnsurePresent,
						Provider: "test",
					},
				})
				Expect(err).ToNot(HaveOccurred())
			})

			It("Should report the pending install without refreshing state", func(ctx context.Context) {
				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(absentState(), nil)
				provider.EXPECT().BundlePath("iterm2").Return("/nonexistent/iTerm.app").AnyTimes()
				provider.EXPECT().Install(gomock.Any(), "iterm2", false).Return(nil)

				event, err := noopCask.Apply(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(event.Changed).To(BeTrue())
				Expect(event.Noop).To(BeTrue())
				Expect(event.NoopMessage).To(Equal("Would have installed"))
			})

			It("Should report a pending adoption without calling the provider", func(ctx context.Context) {
				noopCask.prop.Bundle = GinkgoT().TempDir()

				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(absentState(), nil)
				// no Install call expected, noop short circuits before adoption

				event, err := noopCask.Apply(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(event.Changed).To(BeTrue())
				Expect(event.Adopted).To(BeTrue())
				Expect(event.Noop).To(BeTrue())
				Expect(event.NoopMessage).To(Equal("Would have adopted existing bundle"))
			})
		})

		Describe("Info", func() {
			It("Should call status on the provider", func() {
				res := installedState()
				provider.EXPECT().Status(gomock.Any(), "iterm2").Return(res, nil)

				nfo, err := cask.Info(context.Background())
				Expect(err).ToNot(HaveOccurred())
				Expect(nfo).To(Equal(res))
			})
		})
	})
})
