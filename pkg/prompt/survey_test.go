package prompt_test

import (
	"context"

	"gopkg.in/AlecAivazis/survey.v1/terminal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gitrelease "github.com/bcomnes/gitrelease/pkg"
	"github.com/bcomnes/gitrelease/pkg/prompt"
)

var _ = Describe("Survey", func() {
	validate := gitrelease.ValidateSelection(gitrelease.Suggest(gitrelease.Version{Major: 1}))

	It("returns the typed answer", func() {
		var answer string
		expectInteractive(func(c *console) {
			c.expectString("Enter the new version")
			c.sendLine("3")
			c.expectEOF()
		}, func(stdio terminal.Stdio) {
			var err error
			answer, err = prompt.NewSurvey(stdio).Ask(context.Background(), "Enter the new version (default is 1.1.0):", validate)
			Expect(err).NotTo(HaveOccurred())
		})
		Expect(answer).To(Equal("3"))
	})

	It("asks again after an invalid version", func() {
		var answer string
		expectInteractive(func(c *console) {
			c.expectString("Enter the new version")
			c.sendLine("1.2.x")
			c.expectString("invalid version")
			c.sendLine("1.2.3")
			c.expectEOF()
		}, func(stdio terminal.Stdio) {
			var err error
			answer, err = prompt.NewSurvey(stdio).Ask(context.Background(), "Enter the new version (default is 1.1.0):", validate)
			Expect(err).NotTo(HaveOccurred())
		})
		Expect(answer).To(Equal("1.2.3"))
	})

	It("collects the changelog up to the first empty line", func() {
		var text string
		expectInteractive(func(c *console) {
			c.expectString("End with an empty line")
			c.sendLine("fix bug")
			c.sendLine("add feature")
			c.sendLine("")
			c.expectEOF()
		}, func(stdio terminal.Stdio) {
			var err error
			text, err = prompt.NewSurvey(stdio).Lines(context.Background(), "Enter the changes:")
			Expect(err).NotTo(HaveOccurred())
		})
		Expect(text).To(Equal("fix bug\nadd feature"))
	})
})
