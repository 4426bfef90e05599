package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

var runInput = func(label string, value *string) error {
	return huh.NewInput().Title(label).Value(value).Run()
}

var runConfirm = func(label string, value *bool) error {
	return huh.NewConfirm().Title(label).Affirmative("Yes").Negative("No").Value(value).Run()
}

var runSelect = func(label string, options []huh.Option[int], value *int) error {
	return huh.NewSelect[int]().Title(label).Options(options...).Value(value).Run()
}

// HuhPrompter implements Prompter with the huh terminal form library.
type HuhPrompter struct{}

func (HuhPrompter) Input(label string) (string, error) {
	var value string
	if err := runInput(label, &value); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return strings.TrimSpace(value), nil
}

func (HuhPrompter) Confirm(label string) (bool, error) {
	var value bool
	if err := runConfirm(label, &value); err != nil {
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	return value, nil
}

func (HuhPrompter) Choose(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrInvalidChoice
	}
	huhOptions := make([]huh.Option[int], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, i)
	}

	selected := -1
	if err := runSelect(label, huhOptions, &selected); err != nil {
		return 0, fmt.Errorf("prompt select: %w", err)
	}
	if selected < 0 || selected >= len(options) {
		return 0, ErrInvalidChoice
	}
	return selected, nil
}
