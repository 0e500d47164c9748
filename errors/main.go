package errors

import (
	"fmt"

	"github.com/subquery/cli/ui"
)

type SubqueryError error

const (
	// ExitConfig is returned when a command needs credentials that are not
	// there (EX_CONFIG from sysexits.h).
	ExitConfig  = 78
	ExitFailure = 1
)

var (
	UserConfigNotFound    SubqueryError = &ConfigError{Message: fmt.Sprintf("%s\nRun %s", ui.RedText("Not logged in."), ui.Bold("subquery login"))}
	ProjectNotFound       SubqueryError = fmt.Errorf("%s", ui.RedText("Project not found."))
	DeploymentNotFound    SubqueryError = fmt.Errorf("%s", ui.RedText("No deployment found."))
	LoginFailed           SubqueryError = fmt.Errorf("%s", ui.RedText("Login failed"))
	SidNotSpecified       SubqueryError = fmt.Errorf("%s\nRun %s", ui.RedText("Specify the session id copied from the browser."), ui.Bold("subquery login --sid <sid>"))
	RepositoryNotDetected SubqueryError = fmt.Errorf("%s\nPass %s or run inside a git checkout with an origin remote.", ui.RedText("No git repository found."), ui.Bold("--repo"))
	BranchNotDetected     SubqueryError = fmt.Errorf("%s\nPass %s or run inside a git checkout.", ui.RedText("No git branch found."), ui.Bold("--branch"))
	QueryURLNotFound      SubqueryError = fmt.Errorf("%s", ui.RedText("Deployment has no query url yet."))
	ConfirmationRequired  SubqueryError = fmt.Errorf("%s\nPass %s to confirm without a prompt.", ui.RedText("Can not ask for confirmation without a terminal."), ui.Bold("--yes"))
)
