// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package model_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stationctl/stationctl/model"
	"github.com/stationctl/stationctl/templates"
)

var _ = Describe("PackageResourceProperties", func() {
	Describe("Validate", func() {
		DescribeTable("Should validate names and versions",
			func(prop model.PackageResourceProperties, matcher OmegaMatcher) {
				Expect(prop.Validate()).To(matcher)
			},
			Entry("valid name", model.PackageResourceProperties{
				CommonResourceProperties: model.CommonResourceProperties{Name: "fd-find", Ensure: model.EnsurePresent},
			}, Succeed()),
			Entry("valid pinned version", model.PackageResourceProperties{
				CommonResourceProperties: model.CommonResourceProperties{Name: "zsh", Ensure: "5.9-8+b18"},
			}, Succeed()),
			Entry("missing name", model.PackageResourceProperties{
				CommonResourceProperties: model.CommonResourceProperties{Ensure: model.EnsurePresent},
			}, MatchError(model.ErrResourceNameRequired)),
			Entry("missing ensure", model.PackageResourceProperties{
				CommonResourceProperties: model.CommonResourceProperties{Name: "zsh"},
			}, MatchError(model.ErrResourceEnsureRequired)),
			Entry("shell metacharacters in name", model.PackageResourceProperties{
				CommonResourceProperties: model.CommonResourceProperties{Name: "zsh;rm -rf /", Ensure: model.EnsurePresent},
			}, MatchError(ContainSubstring("dangerous characters"))),
			Entry("spaces in name", model.PackageResourceProperties{
				CommonResourceProperties: model.CommonResourceProperties{Name: "zsh extras", Ensure: model.EnsurePresent},
			}, MatchError(ContainSubstring("invalid characters"))),
			Entry("shell metacharacters in version", model.PackageResourceProperties{
				CommonResourceProperties: model.CommonResourceProperties{Name: "zsh", Ensure: "1.0$(reboot)"},
			}, MatchError(ContainSubstring("dangerous characters"))),
			Entry("shell metacharacters in binary", model.PackageResourceProperties{
				CommonResourceProperties: model.CommonResourceProperties{Name: "zsh", Ensure: model.EnsurePresent},
				Binary:                   "zsh|sh",
			}, MatchError(ContainSubstring("dangerous characters"))),
		)
	})
})

var _ = Describe("ScriptResourceProperties", func() {
	Describe("ParseCommand", func() {
		It("Should honor shell quoting", func() {
			prop := model.ScriptResourceProperties{Command: `git clone 'https://example.net/dotfiles.git' "target dir"`}

			command, args, err := prop.ParseCommand()
			Expect(err).ToNot(HaveOccurred())
			Expect(command).To(Equal("git"))
			Expect(args).To(Equal([]string{"clone", "https://example.net/dotfiles.git", "target dir"}))
		})

		It("Should reject unbalanced quotes", func() {
			prop := model.ScriptResourceProperties{Command: `sh -c 'oops`}

			_, _, err := prop.ParseCommand()
			Expect(err).To(MatchError(ContainSubstring("invalid command")))
		})
	})
})

var _ = Describe("NewValidatedResourcePropertiesFromYaml", func() {
	var env *templates.Env

	BeforeEach(func() {
		env = &templates.Env{
			Facts: map[string]any{"os": map[string]any{"name": "linux"}},
			Data:  map[string]any{"ensure": "latest"},
		}
	})

	It("Should reject unknown resource types", func() {
		_, err := model.NewValidatedResourcePropertiesFromYaml("service", []byte("name: sshd"), env)
		Expect(err).To(MatchError(model.ErrUnknownType))
	})

	It("Should parse the map format", func() {
		props, err := model.NewValidatedResourcePropertiesFromYaml("package", []byte("name: zsh\nensure: present"), env)
		Expect(err).ToNot(HaveOccurred())
		Expect(props).To(HaveLen(1))

		prop := props[0].(*model.PackageResourceProperties)
		Expect(prop.Name).To(Equal("zsh"))
		Expect(prop.Ensure).To(Equal(model.EnsurePresent))
		Expect(prop.Type).To(Equal(model.PackageTypeName))
	})

	It("Should parse the list format with defaults", func() {
		doc := `
- defaults:
    ensure: present
- zsh:
- git:
    ensure: latest
`
		props, err := model.NewValidatedResourcePropertiesFromYaml("package", []byte(doc), env)
		Expect(err).ToNot(HaveOccurred())
		Expect(props).To(HaveLen(2))

		names := []string{props[0].CommonProperties().Name, props[1].CommonProperties().Name}
		Expect(names).To(ConsistOf("zsh", "git"))

		for _, prop := range props {
			switch prop.CommonProperties().Name {
			case "zsh":
				Expect(prop.CommonProperties().Ensure).To(Equal(model.EnsurePresent))
			case "git":
				Expect(prop.CommonProperties().Ensure).To(Equal("latest"))
			}
		}
	})

	It("Should resolve templates in properties", func() {
		props, err := model.NewValidatedResourcePropertiesFromYaml("package", []byte(`name: zsh
ensure: '{{ lookup("data.ensure") }}'`), env)
		Expect(err).ToNot(HaveOccurred())
		Expect(props[0].CommonProperties().Ensure).To(Equal("latest"))
	})

	It("Should validate parsed properties", func() {
		_, err := model.NewValidatedResourcePropertiesFromYaml("package", []byte("name: 'zsh;rm'\nensure: present"), env)
		Expect(err).To(MatchError(ContainSubstring("dangerous characters")))
	})
})
