package reporter

import (
	"encoding/json"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// JSONReporter outputs the result in JSON format
type JSONReporter struct{}

// Report generates JSON output for the given result. Lists are always
// emitted as arrays, never null.
func (r *JSONReporter) Report(result *models.DependencyResult) ([]byte, error) {
	output := *result
	if output.Missing == nil {
		output.Missing = []string{}
	}
	if output.NotInstalled == nil {
		output.NotInstalled = []string{}
	}

	output.Unused = make([]models.UnusedDependency, len(result.Unused))
	for i, u := range result.Unused {
		if u.Locations == nil {
			u.Locations = []models.Location{}
		}
		output.Unused[i] = u
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
