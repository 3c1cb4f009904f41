package manifest

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Parse validates raw builds.yaml bytes against the schema and decodes them.
// Schema violations are returned as a single error listing every issue.
func Parse(data []byte) (*BuildTable, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("invalid build table: %s", strings.Join(msgs, "; "))
	}

	var table BuildTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing build table: %w", err)
	}
	return &table, nil
}
