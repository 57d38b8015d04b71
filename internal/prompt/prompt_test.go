// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/stationctl/stationctl/model/modelmocks"
)

func TestPrompt(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal/Prompt")
}

var _ = Describe("Prompt", func() {
	var (
		mockctl *gomock.Controller
		logger  *modelmocks.MockLogger
		out     *bytes.Buffer
	)

	newPrompt := func(interactive bool, input string) *Prompt {
		return NewWithStreams(interactive, strings.NewReader(input), out, logger)
	}

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		logger = modelmocks.NewMockLogger(mockctl)
		logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

		out = bytes.NewBuffer(nil)
	})

	Describe("Confirm", func() {
		It("Should return the default without I/O when not interactive", func() {
			res, err := newPrompt(false, "n\n").Confirm("Generate key?", true)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(BeTrue())
			Expect(out.String()).To(BeEmpty())
		})

		It("Should accept yes and no answers", func() {
			res, err := newPrompt(true, "y\n").Confirm("Generate key?", false)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(BeTrue())

			res, err = newPrompt(true, "no\n").Confirm("Generate key?", true)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(BeFalse())
		})

		It("Should select the default on empty input", func() {
			res, err := newPrompt(true, "\n").Confirm("Generate key?", true)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(BeTrue())
			Expect(out.String()).To(ContainSubstring("[Y/n]"))
		})

		It("Should reject unrecognized answers", func() {
			_, err := newPrompt(true, "maybe\n").Confirm("Generate key?", false)
			Expect(err).To(MatchError(ContainSubstring("unrecognized answer")))
		})
	})

	Describe("Value", func() {
		It("Should return the default without I/O when not interactive", func() {
			res, err := newPrompt(false, "other\n").Value("Email?", "jane@example.net")
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("jane@example.net"))
			Expect(out.String()).To(BeEmpty())
		})

		It("Should return the typed answer", func() {
			res, err := newPrompt(true, "jane@example.net\n").Value("Email?", "")
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("jane@example.net"))
			Expect(out.String()).To(Equal("Email?: "))
		})

		It("Should select the default on empty input", func() {
			res, err := newPrompt(true, "\n").Value("Email?", "jane@example.net")
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("jane@example.net"))
			Expect(out.String()).To(ContainSubstring("[jane@example.net]"))
		})
	})
})
