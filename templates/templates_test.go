// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTemplates(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Templates")
}

var _ = Describe("Templates", func() {
	var env *Env

	BeforeEach(func() {
		env = &Env{
			Facts: map[string]any{
				"os": map[string]any{
					"name":     "linux",
					"platform": "debian",
				},
			},
			Data: map[string]any{
				"editor": "nvim",
				"count":  3,
				"ratio":  1.5,
			},
			Environ: map[string]string{
				"HOME": "/home/jane",
			},
		}
	})

	Describe("ResolveTemplateString", func() {
		It("Should pass through strings without placeholders", func() {
			res, err := ResolveTemplateString("plain string", env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("plain string"))

			res, err = ResolveTemplateString("", env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(BeEmpty())
		})

		It("Should resolve lookup expressions", func() {
			res, err := ResolveTemplateString(`{{ lookup("facts.os.name") }}`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("linux"))
		})

		It("Should resolve multiple placeholders in surrounding text", func() {
			res, err := ResolveTemplateString(`{{ lookup("data.editor") }} on {{ lookup("facts.os.platform") }}`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("nvim on debian"))
		})

		It("Should support lookup defaults", func() {
			res, err := ResolveTemplateString(`{{ lookup("data.missing", "fallback") }}`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("fallback"))
		})

		It("Should resolve environment fields directly", func() {
			res, err := ResolveTemplateString(`{{ Environ.HOME }}/.zshrc`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("/home/jane/.zshrc"))
		})

		It("Should fail on invalid expressions", func() {
			_, err := ResolveTemplateString(`{{ lookup( }}`, env)
			Expect(err).To(MatchError(ContainSubstring("expr compile error")))
		})
	})

	Describe("ResolveTemplateTyped", func() {
		It("Should preserve the type of a single bare expression", func() {
			res, err := ResolveTemplateTyped(`{{ lookup("data.count") }}`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal(int64(3)))

			res, err = ResolveTemplateTyped(`{{ lookup("data.ratio") }}`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal(1.5))

			res, err = ResolveTemplateTyped(`{{ lookup("facts.os.name") == "linux" }}`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal(true))
		})

		It("Should render to a string when text surrounds the placeholder", func() {
			res, err := ResolveTemplateTyped(`count is {{ lookup("data.count") }}`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("count is 3"))
		})

		It("Should pass through strings without placeholders", func() {
			res, err := ResolveTemplateTyped("plain", env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("plain"))
		})
	})

	Describe("EvalBool", func() {
		It("Should evaluate boolean expressions", func() {
			res, err := EvalBool(`lookup("facts.os.name") == "linux"`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(BeTrue())

			res, err = EvalBool(`lookup("facts.os.name") == "darwin"`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(BeFalse())
		})

		It("Should fail on expressions that are not boolean", func() {
			_, err := EvalBool(`lookup("data.editor")`, env)
			Expect(err).To(MatchError(ContainSubstring("did not evaluate to a boolean")))
		})

		It("Should fail on invalid expressions", func() {
			_, err := EvalBool(`lookup(`, env)
			Expect(err).To(MatchError(ContainSubstring("expr compile error")))
		})
	})

	Describe("lookup", func() {
		It("Should return empty string for missing keys without a default", func() {
			res, err := ResolveTemplateTyped(`{{ lookup("data.missing") }}`, env)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal(""))
		})

		It("Should reject invalid argument counts", func() {
			_, err := ResolveTemplateTyped(`{{ lookup("a", "b", "c") }}`, env)
			Expect(err).To(MatchError(ContainSubstring("lookup requires 1 or 2 arguments")))
		})
	})
})
