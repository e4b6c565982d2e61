package config

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema reflects the current settings document.
func Schema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.ReflectFromType(reflect.TypeOf(Settings{}))
	if schema == nil {
		return nil, fmt.Errorf("failed to reflect settings schema")
	}
	schema.Version = jsonschema.Version
	schema.Title = "continentgen settings"
	schema.Description = fmt.Sprintf("Terrain synthesis settings, format version %d.", CurrentVersion)
	return schema, nil
}

// SchemaJSON returns the indented schema document.
func SchemaJSON() ([]byte, error) {
	schema, err := Schema()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
