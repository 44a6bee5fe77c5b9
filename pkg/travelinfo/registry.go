package travelinfo

import (
	_ "embed"
	"sync"

	"nstravel/pkg/nsdata"
)

//go:embed schemas.yaml
var schemaFile []byte

var (
	registryOnce sync.Once
	registry     *nsdata.Registry
	registryErr  error
)

// SchemaFile returns the embedded schema definitions the typed records in
// this package are generated from.
func SchemaFile() []byte {
	return schemaFile
}

// Registry returns the schemas of the travel information API for dynamic
// construction, with the same hooks as the generated decoders.
func Registry() (*nsdata.Registry, error) {
	registryOnce.Do(func() {
		registry, registryErr = nsdata.LoadRegistry(schemaFile)
		if registryErr == nil {
			registerHooks(registry)
		}
	})
	return registry, registryErr
}
