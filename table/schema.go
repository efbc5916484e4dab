package table

import "github.com/invopop/jsonschema"

// Schema returns the JSON Schema describing a dumped Record, for consumers
// that validate the machine-readable output of an extraction run.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	return r.Reflect(&Record{})
}
