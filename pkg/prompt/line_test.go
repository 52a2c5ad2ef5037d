package prompt_test

import (
	"bytes"
	"context"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gitrelease "github.com/bcomnes/gitrelease/pkg"
	"github.com/bcomnes/gitrelease/pkg/prompt"
)

var _ = Describe("Line", func() {
	var (
		ctx       context.Context
		out       bytes.Buffer
		validate  func(string) error
		newPrompt func(input string) *prompt.Line
	)

	BeforeEach(func() {
		ctx = context.Background()
		out.Reset()
		validate = gitrelease.ValidateSelection(gitrelease.Suggest(gitrelease.Version{Major: 1}))
		newPrompt = func(input string) *prompt.Line {
			return prompt.NewLine(strings.NewReader(input), &out)
		}
	})

	Context("Ask", func() {
		It("returns the trimmed answer", func() {
			answer, err := newPrompt("  3  \n").Ask(ctx, "Enter the new version:", validate)
			Expect(err).NotTo(HaveOccurred())
			Expect(answer).To(Equal("3"))
			Expect(out.String()).To(HavePrefix("Enter the new version: "))
		})

		It("returns an empty answer so the default applies", func() {
			answer, err := newPrompt("\n").Ask(ctx, "Enter the new version:", validate)
			Expect(err).NotTo(HaveOccurred())
			Expect(answer).To(BeEmpty())
		})

		It("asks again until the answer is valid", func() {
			answer, err := newPrompt("1.2\n1.2.x\nv1.2.3\n1.2.3\n").Ask(ctx, "Enter the new version:", validate)
			Expect(err).NotTo(HaveOccurred())
			Expect(answer).To(Equal("1.2.3"))
			Expect(strings.Count(out.String(), "Enter the new version:")).To(Equal(4))
			Expect(strings.Count(out.String(), "Invalid input:")).To(Equal(3))
		})

		It("stops when the input ends", func() {
			_, err := newPrompt("bogus\n").Ask(ctx, "Enter the new version:", validate)
			Expect(err).To(MatchError(gitrelease.ErrInputClosed))
		})

		It("accepts anything without a validator", func() {
			answer, err := newPrompt("No\n").Ask(ctx, "Confirm commit and push? (y/n):", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(answer).To(Equal("No"))
		})
	})

	Context("Lines", func() {
		It("collects lines up to the first empty one", func() {
			text, err := newPrompt("fix bug\nadd feature\n\n").Lines(ctx, "Enter the changes:")
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("fix bug\nadd feature"))
			Expect(out.String()).To(ContainSubstring("End with an empty line:"))
		})

		It("returns an empty changelog for an immediate empty line", func() {
			text, err := newPrompt("\n").Lines(ctx, "Enter the changes:")
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(BeEmpty())
		})
	})

	It("shares one input between questions", func() {
		p := newPrompt("2\nfix bug\n\ny\n")
		version, err := p.Ask(ctx, "Enter the new version:", validate)
		Expect(err).NotTo(HaveOccurred())
		changes, err := p.Lines(ctx, "Enter the changes:")
		Expect(err).NotTo(HaveOccurred())
		confirm, err := p.Ask(ctx, "Confirm commit and push? (y/n):", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect([]string{version, changes, confirm}).To(Equal([]string{"2", "fix bug", "y"}))
	})

	Context("when the context is cancelled", func() {
		var (
			writer *io.PipeWriter
			p      *prompt.Line
			cancel context.CancelFunc
		)

		BeforeEach(func() {
			var reader *io.PipeReader
			reader, writer = io.Pipe()
			p = prompt.NewLine(reader, &out)
			ctx, cancel = context.WithCancel(context.Background())
		})

		AfterEach(func() {
			cancel()
			writer.Close()
		})

		It("interrupts a question waiting for input", func() {
			errc := make(chan error, 1)
			go func() {
				_, err := p.Ask(ctx, "Enter the new version:", validate)
				errc <- err
			}()
			Consistently(errc, "100ms").ShouldNot(Receive())
			cancel()
			Eventually(errc).Should(Receive(MatchError(gitrelease.ErrInterrupted)))
		})

		It("interrupts the changelog", func() {
			errc := make(chan error, 1)
			go func() {
				_, err := p.Lines(ctx, "Enter the changes:")
				errc <- err
			}()
			cancel()
			Eventually(errc).Should(Receive(MatchError(gitrelease.ErrInterrupted)))
		})

		It("hands the line read during the interruption to the next question", func() {
			cancel()
			_, err := p.Ask(ctx, "Enter the new version:", validate)
			Expect(err).To(MatchError(gitrelease.ErrInterrupted))

			go writer.Write([]byte("3\n"))
			answer, err := p.Ask(context.Background(), "Enter the new version:", validate)
			Expect(err).NotTo(HaveOccurred())
			Expect(answer).To(Equal("3"))
		})
	})
})
