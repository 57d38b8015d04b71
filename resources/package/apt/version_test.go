// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package apt

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Debian Version", func() {
	Describe("ParseVersion", func() {
		It("Should reject empty strings", func() {
			_, err := ParseVersion("")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("empty string"))
		})

		It("Should reject invalid version strings", func() {
			_, err := ParseVersion("!!!invalid!!!")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unable to parse"))
		})

		DescribeTable("Should parse valid version strings",
			func(input string, expectedEpoch int, expectedUpstream string, expectedRevision string) {
				v, err := ParseVersion(input)
				Expect(err).ToNot(HaveOccurred())
				Expect(v.Epoch).To(Equal(expectedEpoch))
				Expect(v.UpstreamVersion).To(Equal(expectedUpstream))
				Expect(v.DebianRevision).To(Equal(expectedRevision))
			},
			Entry("version with epoch and revision",
				"1:20191210.1-0ubuntu0.19.04.2", 1, "20191210.1", "0ubuntu0.19.04.2"),
			Entry("version without epoch",
				"20191210.1-0ubuntu0.19.04.2", 0, "20191210.1", "0ubuntu0.19.04.2"),
			Entry("version with plus sign, no revision",
				"2.42.1+19.04", 0, "2.42.1+19.04", ""),
			Entry("version with git suffix and tilde in revision",
				"3.32.2+git20190711-2ubuntu1~19.04.1", 0, "3.32.2+git20190711", "2ubuntu1~19.04.1"),
			Entry("simple version",
				"1.0", 0, "1.0", ""),
			Entry("version with only revision",
				"1.0-1", 0, "1.0", "1"),
			Entry("version with tilde",
				"1.0~beta1", 0, "1.0~beta1", ""),
		)
	})

	Describe("String", func() {
		It("Should round-trip parsed versions", func() {
			inputs := []string{
				"1:20191210.1-0ubuntu0.19.04.2",
				"20191210.1-0ubuntu0.19.04.2",
				"2.42.1+19.04",
				"3.32.2+git20190711-2ubuntu1~19.04.1",
				"5:1.0.0+git-20190109.133f4c4-0ubuntu2",
			}
			for _, input := range inputs {
				v, err := ParseVersion(input)
				Expect(err).ToNot(HaveOccurred())
				Expect(v.String()).To(Equal(input))
			}
		})
	})

	Describe("CompareVersionStrings", func() {
		DescribeTable("version ordering",
			func(a, b string, expected int) {
				cmp, err := CompareVersionStrings(a, b)
				Expect(err).ToNot(HaveOccurred())
				Expect(cmp).To(Equal(expected))
			},
			Entry("equal versions", "1.0-1", "1.0-1", 0),
			Entry("numeric comparison", "1.9", "1.10", -1),
			Entry("epoch outranks upstream", "1:1.0", "2.0", 1),
			Entry("tilde sorts before release", "1.0~rc1", "1.0", -1),
			Entry("tilde sorts before revision", "1.0~rc1-1", "1.0-1", -1),
			Entry("letters compare lexically", "1.0a", "1.0b", -1),
			Entry("revision breaks ties", "1.0-1", "1.0-2", -1),
			Entry("plus sorts after release", "1.0+git1", "1.0", 1),
			Entry("debian style upgrade", "5.9-8+b17", "5.9-8+b18", -1),
		)

		It("Should reject unparseable input", func() {
			_, err := CompareVersionStrings("ok1.0", "!!!")
			Expect(err).To(HaveOccurred())
		})
	})
})
