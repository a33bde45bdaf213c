package configure

import (
	"strconv"

	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldHost     = "host"
	inputFieldPort     = "port"
	inputFieldUsername = "username"
	inputFieldPassword = "password"
)

type inputs struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Resolve prompts for any connection details not provided as flags,
// defaulting to the profile's current values
func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Host == "" {
		questions = append(questions, &survey.Question{
			Name:   inputFieldHost,
			Prompt: &survey.Input{Message: "MongoDB Host", Default: profile.MongoDBHost()},
		})
	}

	if i.Port == 0 {
		questions = append(questions, &survey.Question{
			Name:   inputFieldPort,
			Prompt: &survey.Input{Message: "MongoDB Port", Default: strconv.Itoa(profile.MongoDBPort())},
		})
	}

	if i.Username == "" {
		questions = append(questions, &survey.Question{
			Name:   inputFieldUsername,
			Prompt: &survey.Input{Message: "Username", Default: profile.Credentials().Username},
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:   inputFieldPassword,
			Prompt: &survey.Password{Message: "Password"},
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
