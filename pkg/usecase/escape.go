package usecase

import (
	"strings"
	"unicode"
)

// shellSpecialChars are the non-whitespace characters that force quoting
const shellSpecialChars = "\"'`$\\!*?(){}[]<>|&;"

// EscapeShellArg returns arg as a single POSIX shell token. Arguments with
// whitespace or shell metacharacters are wrapped in double quotes after
// escaping backslashes and then double quotes; anything else is returned as is.
func EscapeShellArg(arg string) string {
	if !needsQuoting(arg) {
		return arg
	}

	escaped := strings.ReplaceAll(arg, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// BuildCommandLine joins command and the escaped args with single spaces.
// The command itself is not quoted.
func BuildCommandLine(command string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, command)
	for _, arg := range args {
		parts = append(parts, EscapeShellArg(arg))
	}
	return strings.Join(parts, " ")
}

func needsQuoting(arg string) bool {
	return strings.ContainsFunc(arg, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(shellSpecialChars, r)
	})
}
