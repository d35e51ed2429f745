package prompt

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// Confirm asks a yes/no question. Without a terminal it answers no.
func Confirm(label string) (bool, error) {
	if !isInteractive {
		return false, nil
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if errors.Is(err, promptui.ErrInterrupt) {
		return false, ErrCancelled
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
