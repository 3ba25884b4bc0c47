package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// SettingRequest describes one missing setting to obtain from the user.
type SettingRequest struct {
	// Key is the setting name.
	Key string
	// Bears lists the bears that need the setting, in discovery order.
	Bears []string
	// Help is optional help text from the bear's requirement metadata.
	Help string
}

// Interactor obtains values for missing settings. Implementations may be
// non-interactive, in which case unanswered settings simply stay absent.
type Interactor interface {
	// AcquireSettings asks for a value for each request, in order.
	// The returned map holds an entry per answered request; a request
	// without an answer is not an error.
	AcquireSettings(requests []SettingRequest) (map[string]string, error)

	// Close releases any resources held by the interaction channel.
	Close() error
}

// NullInteractor never prompts and never blocks.
type NullInteractor struct{}

// NewNullInteractor creates an interactor that answers nothing.
func NewNullInteractor() *NullInteractor {
	return &NullInteractor{}
}

// AcquireSettings returns no answers.
func (n *NullInteractor) AcquireSettings(_ []SettingRequest) (map[string]string, error) {
	return map[string]string{}, nil
}

// Close implements Interactor.
func (n *NullInteractor) Close() error {
	return nil
}

// ConsoleInteractor prompts on the controlling terminal with line editing.
type ConsoleInteractor struct {
	printer *Printer
	line    *liner.State
}

// NewConsoleInteractor creates an interactor bound to the given printer.
func NewConsoleInteractor(printer *Printer) *ConsoleInteractor {
	return &ConsoleInteractor{printer: printer}
}

// AcquireSettings prompts for each requested setting. When stdin is not a
// terminal no prompts are issued and no answers are returned.
func (c *ConsoleInteractor) AcquireSettings(requests []SettingRequest) (map[string]string, error) {
	answers := make(map[string]string, len(requests))
	if len(requests) == 0 {
		return answers, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		c.printer.Debug("stdin is not a terminal, skipping %d setting prompt(s)", len(requests))
		return answers, nil
	}

	if c.line == nil {
		c.line = liner.NewLiner()
		c.line.SetCtrlCAborts(true)
	}

	for _, req := range requests {
		if req.Help != "" {
			fmt.Fprintf(os.Stderr, "%s\n", req.Help)
		}
		prompt := fmt.Sprintf("Please enter a value for the setting %q needed by %s: ",
			req.Key, strings.Join(req.Bears, ", "))

		value, err := c.line.Prompt(prompt)
		if err != nil {
			return answers, fmt.Errorf("acquiring setting %q: %w", req.Key, err)
		}
		answers[req.Key] = value
	}

	return answers, nil
}

// Close releases the terminal state.
func (c *ConsoleInteractor) Close() error {
	if c.line == nil {
		return nil
	}
	err := c.line.Close()
	c.line = nil
	return err
}
