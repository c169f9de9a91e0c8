// Package uri holds URL helpers shared by the config page bridge and the provider adapters.
package uri

import (
	"net/url"
	"strings"
)

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent escapes s the way browsers escape a single URI component
func EncodeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}
