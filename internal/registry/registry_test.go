// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/stationctl/stationctl/model"
	"github.com/stationctl/stationctl/model/modelmocks"
)

func TestRegistry(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal/Registry")
}

type fakeProvider struct{ name string }

func (p *fakeProvider) Name() string { return p.name }

var _ = Describe("Registry", func() {
	var (
		mockctl *gomock.Controller
		logger  *modelmocks.MockLogger
		runner  *modelmocks.MockCommandRunner
	)

	newFactory := func(typeName string, name string, manageable bool, priority int) *modelmocks.MockProviderFactory {
		factory := modelmocks.NewMockProviderFactory(mockctl)
		factory.EXPECT().TypeName().AnyTimes().Return(typeName)
		factory.EXPECT().Name().AnyTimes().Return(name)
		factory.EXPECT().IsManageable(gomock.Any()).AnyTimes().Return(manageable, priority, nil)
		factory.EXPECT().New(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(&fakeProvider{name: name}, nil)

		return factory
	}

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		logger = modelmocks.NewMockLogger(mockctl)
		runner = modelmocks.NewMockCommandRunner(mockctl)

		logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
		logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

		Clear()
	})

	Describe("Register", func() {
		It("Should only accept provider factories", func() {
			err := Register("not a factory")
			Expect(err).To(MatchError(ContainSubstring("cannot register provider")))
		})

		It("Should reject duplicate providers", func() {
			Expect(Register(newFactory("package", "apt", true, 1))).To(Succeed())

			err := Register(newFactory("package", "apt", true, 1))
			Expect(err).To(MatchError(model.ErrDuplicateProvider))
		})
	})

	Describe("Types", func() {
		It("Should list registered types sorted", func() {
			MustRegister(newFactory("package", "apt", true, 1))
			MustRegister(newFactory("cask", "brew", true, 1))

			Expect(Types()).To(Equal([]string{"cask", "package"}))
		})
	})

	Describe("FindSuitableProvider", func() {
		It("Should fail when nothing can manage the node", func() {
			_, err := FindSuitableProvider("package", "", nil, logger, runner, runner)
			Expect(err).To(MatchError(model.ErrNoSuitableProvider))
		})

		It("Should pick the highest priority manageable provider", func() {
			MustRegister(newFactory("package", "brew", true, 10))
			MustRegister(newFactory("package", "apt", true, 1))

			provider, err := FindSuitableProvider("package", "", nil, logger, runner, runner)
			Expect(err).ToNot(HaveOccurred())
			Expect(provider.Name()).To(Equal("apt"))
		})

		It("Should skip providers that cannot manage the node", func() {
			MustRegister(newFactory("package", "apt", false, 1))
			MustRegister(newFactory("package", "brew", true, 10))

			provider, err := FindSuitableProvider("package", "", nil, logger, runner, runner)
			Expect(err).ToNot(HaveOccurred())
			Expect(provider.Name()).To(Equal("brew"))
		})

		It("Should find named providers", func() {
			MustRegister(newFactory("package", "apt", true, 1))
			MustRegister(newFactory("package", "brew", true, 10))

			provider, err := FindSuitableProvider("package", "brew", nil, logger, runner, runner)
			Expect(err).ToNot(HaveOccurred())
			Expect(provider.Name()).To(Equal("brew"))
		})

		It("Should fail for unknown named providers", func() {
			MustRegister(newFactory("package", "apt", true, 1))

			_, err := FindSuitableProvider("package", "pacman", nil, logger, runner, runner)
			Expect(err).To(MatchError(model.ErrProviderNotFound))
		})

		It("Should fail for named providers that cannot manage the node", func() {
			MustRegister(newFactory("package", "brew", false, 10))

			_, err := FindSuitableProvider("package", "brew", nil, logger, runner, runner)
			Expect(err).To(MatchError(model.ErrProviderNotManageable))
		})
	})
})
