package model

// ExecutionRequest is one command invocation built from an Action and a folder
type ExecutionRequest struct {
	Command    string
	Args       []string
	Cwd        string
	Label      string
	FolderName string
}

// ExecutionResult reports the outcome of one command invocation
type ExecutionResult struct {
	Success     bool
	Error       string
	CommandLine string
	Cwd         string
}

// NewExecutionRequest binds an action to a resolved working directory
func NewExecutionRequest(action Action, cwd string) ExecutionRequest {
	return ExecutionRequest{
		Command:    action.Command,
		Args:       action.Args,
		Cwd:        cwd,
		Label:      action.Label,
		FolderName: action.FolderName,
	}
}
