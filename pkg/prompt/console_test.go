package prompt_test

import (
	"time"

	expect "github.com/Netflix/go-expect"
	"github.com/hinshun/vt10x"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/AlecAivazis/survey.v1/terminal"
)

// console wraps a pseudo-terminal; failures are reported through gomega.
type console struct {
	*expect.Console
}

func (c *console) expectString(s string) {
	_, err := c.ExpectString(s)
	Expect(err).NotTo(HaveOccurred())
}

func (c *console) sendLine(s string) {
	_, err := c.SendLine(s)
	Expect(err).NotTo(HaveOccurred())
}

func (c *console) expectEOF() {
	_, err := c.ExpectEOF()
	Expect(err).NotTo(HaveOccurred())
}

// expectInteractive runs prompts against a virtual terminal while userInput
// plays the operator.
func expectInteractive(userInput func(*console), prompts func(terminal.Stdio)) {
	c, state, err := vt10x.NewVT10XConsole()
	Expect(err).NotTo(HaveOccurred())
	defer c.Close()
	defer func() { GinkgoWriter.Write([]byte(expect.StripTrailingEmptyLines(state.String()))) }()

	donec := make(chan struct{})
	go func() {
		defer GinkgoRecover()
		defer close(donec)
		userInput(&console{Console: c})
	}()

	go func() {
		defer GinkgoRecover()
		prompts(terminal.Stdio{In: c.Tty(), Out: c.Tty(), Err: c.Tty()})
		// Close the slave end so the operator side sees EOF.
		c.Tty().Close()
		<-donec
	}()

	select {
	case <-time.After(10 * time.Second):
		c.Tty().Close()
		Fail("test timed out")
	case <-donec:
	}
}
