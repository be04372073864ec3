package config

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/invopop/jsonschema"
)

// coreKeys are the top-level keys decoded into Config itself.
var coreKeys = map[string]bool{
	"version":     true,
	"buffer_size": true,
	"strict":      true,
	"output":      true,
	"theme":       true,
}

var (
	extensions   = make(map[string]interface{})
	extensionsMu sync.RWMutex
)

// RegisterExtension declares the shape of a top-level section owned by another
// package. prototype is reflected into the schema under key, so the section is
// validated along with the core settings. Unregistered sections are accepted
// without validation.
func RegisterExtension(key string, prototype interface{}) {
	extensionsMu.Lock()
	defer extensionsMu.Unlock()
	extensions[key] = prototype
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		// Unregistered extension sections are allowed at the top level.
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		DoNotReference:            true,
		FieldNameTag:              "yaml",
	}
}

// GenerateSchema generates the JSON Schema for the configuration file,
// including every registered extension section.
func GenerateSchema() ([]byte, error) {
	r := newReflector()

	schema := r.Reflect(&Config{})
	schema.Title = "selfpath configuration"
	schema.Description = "Schema for selfpath.yml and selfpath.toml."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	extensionsMu.RLock()
	keys := make([]string, 0, len(extensions))
	for key := range extensions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sub := r.Reflect(extensions[key])
		sub.Version = ""
		sub.ID = ""
		schema.Properties.Set(key, sub)
	}
	extensionsMu.RUnlock()

	return json.MarshalIndent(schema, "", "  ")
}
