package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// PromptSecret reads a value without echoing it.
func PromptSecret(text string) (string, error) {
	prompt := promptui.Prompt{
		Label: text,
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return errors.New("Value is required")
			}
			return nil
		},
	}
	return prompt.Run()
}

// PromptConfirm asks a yes/no question. Answering no is not an error.
func PromptConfirm(text string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     text,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if err == promptui.ErrAbort {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PromptDelete confirms the deletion of the named resource.
func PromptDelete(kind string, name string) (bool, error) {
	return PromptConfirm(fmt.Sprintf("Are you sure you want to delete %s %s", kind, Bold(name)))
}
