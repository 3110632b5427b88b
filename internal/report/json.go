package report

import (
	"encoding/json"
	"os"

	"github.com/verheyen/throttlecal/internal/curve"
)

func WriteJSON(path string, payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

func WriteSeriesJSON(path string, series curve.Series) error {
	return WriteJSON(path, series)
}
