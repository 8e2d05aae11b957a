package menu

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// ErrCancelled is returned by a Prompter when the operator interrupts the
// prompt (Ctrl+C). The engine translates it into the exit-confirmation
// flow at the top level and into "cancel" inside sub-menus.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter is the interactive surface the menu engine drives. The real
// implementation wraps promptui; tests use a scripted one.
type Prompter interface {
	// Select shows an arrow-key menu and returns the chosen index.
	Select(label string, items []string) (int, error)
	// Input prompts for a line of input, re-prompting in place while
	// validate rejects it.
	Input(label, defaultValue string, validate func(string) error) (string, error)
	// Secret prompts for a masked line of input.
	Secret(label string, validate func(string) error) (string, error)
	// Confirm asks a distinct y/n question and defaults to no.
	Confirm(label string) (bool, error)
}

// NewPrompter returns the promptui-backed Prompter.
func NewPrompter() Prompter {
	return promptuiPrompter{}
}

type promptuiPrompter struct{}

func (promptuiPrompter) Select(label string, items []string) (int, error) {
	sel := promptui.Select{
		Label:    label,
		Items:    items,
		Size:     len(items),
		HideHelp: true,
	}
	i, _, err := sel.Run()
	if err != nil {
		return 0, translate(err)
	}
	return i, nil
}

func (promptuiPrompter) Input(label, defaultValue string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  defaultValue,
		Validate: validate,
	}
	out, err := prompt.Run()
	if err != nil {
		return "", translate(err)
	}
	return out, nil
}

func (promptuiPrompter) Secret(label string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Mask:     '*',
		Validate: validate,
	}
	out, err := prompt.Run()
	if err != nil {
		return "", translate(err)
	}
	return out, nil
}

func (promptuiPrompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if err != nil {
		// promptui reports a "no" answer as ErrAbort.
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, translate(err)
	}
	return true, nil
}

func translate(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrCancelled
	}
	return err
}
