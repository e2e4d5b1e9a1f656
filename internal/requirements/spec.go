package requirements

import "strings"

// BaseName extracts the bare project name from a requirement specifier.
// It cuts extras ("requests[socks]") and anything after the first version
// operator or environment marker. The result is for display and logging
// only; the full specifier is what gets passed to the package manager.
func BaseName(spec string) string {
	name := strings.TrimSpace(spec)
	if name == "" {
		return ""
	}
	if idx := strings.Index(name, "["); idx >= 0 {
		name = name[:idx]
	}
	if idx := strings.IndexAny(name, " <>=!~;"); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}
