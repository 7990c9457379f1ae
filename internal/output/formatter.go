package output

import (
	"strings"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations must be pure: deterministic output, no side effects.
// Display rounding to 2 decimal places happens here and nowhere else; the
// engine hands over full-precision values.
type Formatter interface {
	FormatScenario(result *domain.ScenarioResult) ([]byte, error)
	FormatGrid(result *domain.GridResult) ([]byte, error)
	// Name returns a short identifier for flag parsing and logging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"json-pretty": "json",
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
// Returns nil when the name is unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, len(builtInFormatters))
	for i, f := range builtInFormatters {
		names[i] = f.Name()
	}
	return names
}
