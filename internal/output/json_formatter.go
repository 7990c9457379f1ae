package output

import (
	"github.com/goccy/go-json"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// JSONFormatter serializes results as pretty-printed JSON with full engine
// precision; decimal values marshal as strings and are not display-rounded.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) FormatScenario(result *domain.ScenarioResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func (JSONFormatter) FormatGrid(result *domain.GridResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
