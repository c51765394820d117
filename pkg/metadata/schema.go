package metadata

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed schema/metadata.json
var schemaFS embed.FS

var (
	schemaOnce sync.Once
	schemaDoc  *openapi3.Schema
	schemaErr  error
)

func metadataSchema() (*openapi3.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := schemaFS.ReadFile("schema/metadata.json")
		if err != nil {
			schemaErr = fmt.Errorf("metadata: read embedded schema: %w", err)
			return
		}
		var schema openapi3.Schema
		if err := schema.UnmarshalJSON(raw); err != nil {
			schemaErr = fmt.Errorf("metadata: parse embedded schema: %w", err)
			return
		}
		schemaDoc = &schema
	})
	return schemaDoc, schemaErr
}

// validateAgainstSchema round-trips the metadata object through JSON and
// checks the result against the embedded schema, the same gate the upstream
// minting pipeline applies.
func validateAgainstSchema(meta HypercertMetadata) error {
	schema, err := metadataSchema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("metadata: encode for validation: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("metadata: decode for validation: %w", err)
	}
	return schema.VisitJSON(value)
}
