// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmdrunner

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/stationctl/stationctl/model"
	"github.com/stationctl/stationctl/model/modelmocks"
)

var _ = Describe("DryRunner", func() {
	var (
		mockctl *gomock.Controller
		logger  *modelmocks.MockLogger
		runner  *DryRunner
		err     error
	)

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		logger = modelmocks.NewMockLogger(mockctl)
		logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

		runner, err = NewDryRunner(logger)
		Expect(err).ToNot(HaveOccurred())
	})

	It("Should report synthetic success without executing", func(ctx context.Context) {
		stdout, stderr, exitcode, err := runner.Execute(ctx, "apt-get", "-q", "-y", "install", "zsh")
		Expect(err).ToNot(HaveOccurred())
		Expect(exitcode).To(Equal(0))
		Expect(stdout).To(BeNil())
		Expect(stderr).To(BeNil())
	})

	It("Should record commands in order with shell quoting", func(ctx context.Context) {
		_, _, _, err := runner.Execute(ctx, "apt-get", "-q", "-y", "install", "zsh")
		Expect(err).ToNot(HaveOccurred())

		_, _, _, err = runner.ExecuteWithOptions(ctx, model.ExtendedExecOptions{
			Command: "git",
			Args:    []string{"config", "--global", "user.name", "Jane Doe"},
		})
		Expect(err).ToNot(HaveOccurred())

		Expect(runner.RecordedCommands()).To(Equal([]string{
			"apt-get -q -y install zsh",
			"git config --global user.name 'Jane Doe'",
		}))
	})
})
