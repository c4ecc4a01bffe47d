package fixture

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema is the accepted shape of a JSON fixture. Extra fields are
// tolerated so fixtures can carry notes for humans.
var responseSchema = gojsonschema.NewGoLoader(map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"ExitCode": map[string]interface{}{"type": "integer"},
		"Output":   map[string]interface{}{"type": "string"},
		"Error":    map[string]interface{}{"type": []string{"string", "null"}},
	},
	"additionalProperties": true,
})

// checkShape validates raw JSON against responseSchema.
func checkShape(data []byte) error {
	result, err := gojsonschema.Validate(responseSchema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("fixture does not match expected shape: %s", strings.Join(errs, "; "))
	}

	return nil
}
