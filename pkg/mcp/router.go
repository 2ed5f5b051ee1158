package mcp

import (
	"fmt"
	"regexp"
	"strings"
)

// qualifiedNameRegex validates the canonical "server.tool" format. Both
// parts must start with a word character and contain only word characters
// and hyphens.
var qualifiedNameRegex = regexp.MustCompile(`^([\w][\w-]*)\.([\w][\w-]*)$`)

// NormalizeToolName maps provider-facing tool names back to canonical form.
// Providers with restricted function-name alphabets get "server__tool"; the
// catalog and dispatch use "server.tool".
func NormalizeToolName(name string) string {
	if strings.Contains(name, "__") && !strings.Contains(name, ".") {
		return strings.Replace(name, "__", ".", 1)
	}
	return name
}

// ProviderToolName maps a canonical name to the restricted-alphabet form.
func ProviderToolName(name string) string {
	return strings.Replace(name, ".", "__", 1)
}

// SplitToolName splits a canonical "server.tool" name into its parts,
// validating the format strictly.
func SplitToolName(name string) (server, tool string, err error) {
	matches := qualifiedNameRegex.FindStringSubmatch(name)
	if matches == nil {
		return "", "", fmt.Errorf(
			"invalid tool name %q: must be 'server.tool' (e.g. 'kubernetes.get_pods')", name)
	}
	return matches[1], matches[2], nil
}
