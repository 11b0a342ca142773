package ui

import (
	"github.com/AlecAivazis/survey/v2"
)

// Input prompts the user for a line of text, offering a default value
func (u *UI) Input(prompt, defaultValue string) (string, error) {
	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// Confirm prompts the user for a yes/no answer. In non-interactive mode
// the default is returned without prompting.
func (u *UI) Confirm(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return defaultYes, nil
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}
