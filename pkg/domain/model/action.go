package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Action represents a command template bound to a folder
type Action struct {
	FolderName string   `yaml:"folderName" toml:"folderName" json:"folderName"`
	Label      string   `yaml:"label" toml:"label" json:"label"`
	Command    string   `yaml:"command" toml:"command" json:"command"`
	Args       []string `yaml:"args" toml:"args" json:"args"`
}

// RegisteredAction pairs an action with the identifier it is invoked by
type RegisteredAction struct {
	ID     string
	Action Action
	Preset bool
}

// ValidateAction reports whether candidate is a well-formed action record.
func ValidateAction(candidate any) bool {
	_, err := ParseAction(candidate)
	return err == nil
}

// ParseAction converts an untrusted configuration record into an Action.
// Any violated rule rejects the whole record; no value is coerced.
func ParseAction(candidate any) (*Action, error) {
	var fields map[string]any

	switch v := candidate.(type) {
	case nil:
		return nil, goerr.New("action must be a record, got nil")
	case Action:
		return parseTyped(v)
	case *Action:
		if v == nil {
			return nil, goerr.New("action must be a record, got nil")
		}
		return parseTyped(*v)
	case map[string]any:
		fields = v
	case map[any]any:
		fields = make(map[string]any, len(v))
		for key, value := range v {
			name, ok := key.(string)
			if !ok {
				return nil, goerr.New("action record keys must be strings")
			}
			fields[name] = value
		}
	default:
		return nil, goerr.New("action must be a record")
	}

	folderName, err := requireString(fields, "folderName")
	if err != nil {
		return nil, err
	}
	label, err := requireString(fields, "label")
	if err != nil {
		return nil, err
	}
	command, err := requireString(fields, "command")
	if err != nil {
		return nil, err
	}

	var args []string
	switch v := fields["args"].(type) {
	case []string:
		args = append([]string{}, v...)
	case []any:
		args = make([]string, len(v))
		for i, arg := range v {
			s, ok := arg.(string)
			if !ok {
				return nil, goerr.New("action 'args' must be string array", goerr.V("index", i))
			}
			args[i] = s
		}
	default:
		return nil, goerr.New("action 'args' must be an array")
	}

	return &Action{
		FolderName: folderName,
		Label:      label,
		Command:    command,
		Args:       args,
	}, nil
}

func parseTyped(a Action) (*Action, error) {
	fields := []struct{ name, value string }{
		{"folderName", a.FolderName},
		{"label", a.Label},
		{"command", a.Command},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, goerr.New("action '"+f.name+"' must be a non-empty string", goerr.V("field", f.name))
		}
	}

	parsed := a
	parsed.Args = append([]string{}, a.Args...)
	return &parsed, nil
}

func requireString(fields map[string]any, name string) (string, error) {
	s, ok := fields[name].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", goerr.New("action '"+name+"' must be a non-empty string", goerr.V("field", name))
	}
	return s, nil
}
