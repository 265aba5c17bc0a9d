package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxWorkspaceNameLength = 80
	maxChannelNameLength   = 80
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeChannelName trims name, replaces every whitespace run with a
// single hyphen and lower-cases the result.
func NormalizeChannelName(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "-"))
}

func validateWorkspaceName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalidArgument("workspace", "name is required")
	}
	if utf8.RuneCountInString(name) > maxWorkspaceNameLength {
		return "", invalidArgument("workspace", "name must be at most %d characters", maxWorkspaceNameLength)
	}
	return name, nil
}

func validateChannelName(name string) (string, error) {
	name = NormalizeChannelName(name)
	if name == "" {
		return "", invalidArgument("channel", "name is required")
	}
	if utf8.RuneCountInString(name) > maxChannelNameLength {
		return "", invalidArgument("channel", "name must be at most %d characters", maxChannelNameLength)
	}
	return name, nil
}
