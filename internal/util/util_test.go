// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestUtil(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal/Util")
}

var _ = Describe("Util", func() {
	Describe("VersionCmp", func() {
		DescribeTable("Should order versions correctly",
			func(a string, b string, ignoreTrailingZeroes bool, expect int) {
				Expect(VersionCmp(a, b, ignoreTrailingZeroes)).To(Equal(expect))
			},
			Entry("equal", "1.0.0", "1.0.0", false, 0),
			Entry("numeric segments", "1.2", "1.10", false, -1),
			Entry("major", "2.0", "1.9", false, 1),
			Entry("letter suffix", "1.2a", "1.2b", false, -1),
			Entry("case insensitive letters", "1.0a", "1.0A", false, 0),
			Entry("leading zero is lexical", "1.01", "1.1", false, -1),
			Entry("revision tiebreak", "1.0-1", "1.0-2", false, -1),
			Entry("longer version wins", "1.0.0", "1", false, 1),
			Entry("trailing zeroes normalized", "1.0.0", "1", true, 0),
			Entry("trailing zeroes with suffix", "1.2.0-1", "1.2-1", true, 0),
		)
	})

	Describe("DeepMergeMap", func() {
		It("Should merge nested maps with source winning", func() {
			target := map[string]any{
				"editor": "vim",
				"os":     map[string]any{"name": "linux", "platform": "debian"},
			}
			source := map[string]any{
				"editor": "nvim",
				"os":     map[string]any{"name": "darwin"},
			}

			res := DeepMergeMap(target, source)
			Expect(res).To(HaveKeyWithValue("editor", "nvim"))
			Expect(res["os"]).To(HaveKeyWithValue("name", "darwin"))
			Expect(res["os"]).To(HaveKeyWithValue("platform", "debian"))
		})

		It("Should concatenate slices", func() {
			res := DeepMergeMap(
				map[string]any{"packages": []any{"zsh"}},
				map[string]any{"packages": []any{"git"}},
			)
			Expect(res["packages"]).To(Equal([]any{"zsh", "git"}))
		})

		It("Should not mutate the target", func() {
			target := map[string]any{"nested": map[string]any{"key": "old"}}
			DeepMergeMap(target, map[string]any{"nested": map[string]any{"key": "new"}})
			Expect(target["nested"]).To(HaveKeyWithValue("key", "old"))
		})
	})

	Describe("FileExists", func() {
		It("Should detect files and directories", func() {
			dir := GinkgoT().TempDir()
			file := filepath.Join(dir, "f")
			Expect(os.WriteFile(file, nil, 0o644)).To(Succeed())

			Expect(FileExists(file)).To(BeTrue())
			Expect(FileExists(dir)).To(BeTrue())
			Expect(FileExists(filepath.Join(dir, "missing"))).To(BeFalse())
		})
	})

	Describe("IsDirectory", func() {
		It("Should only match directories", func() {
			dir := GinkgoT().TempDir()
			file := filepath.Join(dir, "f")
			Expect(os.WriteFile(file, nil, 0o644)).To(Succeed())

			Expect(IsDirectory(dir)).To(BeTrue())
			Expect(IsDirectory(file)).To(BeFalse())
			Expect(IsDirectory(filepath.Join(dir, "missing"))).To(BeFalse())
		})
	})

	Describe("ExecutableInPath", func() {
		It("Should find executables in the path", func() {
			path, found, err := ExecutableInPath("sh")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(path).ToNot(BeEmpty())

			_, found, err = ExecutableInPath("stationctl-test-no-such-binary")
			Expect(err).To(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})
})
