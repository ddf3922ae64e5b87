package model

import "fmt"

const (
	// CommandNamespace prefixes every identifier issued by the registry
	CommandNamespace = "opener"
)

// PresetActions returns the built-in actions keyed by their identifier.
// Presets apply to any folder, so FolderName is a wildcard.
func PresetActions() []RegisteredAction {
	return []RegisteredAction{
		{
			ID:     CommandNamespace + ".openXcode",
			Preset: true,
			Action: Action{FolderName: "*", Label: "🧩 Open in Xcode", Command: "open", Args: []string{"-a", "Xcode", "."}},
		},
		{
			ID:     CommandNamespace + ".openAndroidStudio",
			Preset: true,
			Action: Action{FolderName: "*", Label: "🤖 Open in Android Studio", Command: "open", Args: []string{"-a", "Android Studio", "."}},
		},
		{
			ID:     CommandNamespace + ".openCurrentWindow",
			Preset: true,
			Action: Action{FolderName: "*", Label: "💠 Open here in VSCode", Command: "code", Args: []string{"."}},
		},
		{
			ID:     CommandNamespace + ".openNewWindow",
			Preset: true,
			Action: Action{FolderName: "*", Label: "💠 Open in new VSCode window", Command: "code", Args: []string{"-n", "."}},
		},
	}
}

// CustomActionID returns the identifier of the index-th valid custom action
func CustomActionID(index int) string {
	return fmt.Sprintf("%s.custom.%d", CommandNamespace, index)
}
