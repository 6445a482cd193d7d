package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses the dataset file at path, then checks it for
// structural defects. Defects are returned alongside the dataset so the
// caller can log them and keep running with degraded data.
func Load(path string) (*Dataset, []error, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dataset: %w", err)
	}

	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, nil, fmt.Errorf("parsing dataset: %w", err)
	}

	return &d, Validate(&d), nil
}
