package nsdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchemas = `
schemas:
  - name: Stop
    fields:
      - {name: name, type: string}
      - {name: track, type: "?Track", doc: Platform the train stops at}
  - name: Track
    hook: true
    fields:
      - {name: spoorNummer, type: string}
`

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry([]byte(testSchemas))
	require.NoError(t, err)
	assert.Equal(t, []string{"Stop", "Track"}, reg.Names())

	stop, err := reg.Lookup("Stop")
	require.NoError(t, err)
	f, ok := stop.Field("TRACK")
	require.True(t, ok)
	assert.Equal(t, "?Track", f.Type.String())
	assert.Equal(t, "Platform the train stops at", f.Doc)

	inst, err := reg.Construct("Stop", map[string]any{"name": "Tiel", "track": map[string]any{"spoorNummer": "2"}})
	require.NoError(t, err)
	assert.Equal(t, "2", inst.Get("track").(*Instance).Get("spoorNummer"))
}

func TestLoadRegistryErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "schemas:\n  - name: A\n    feilds: []\n",
		"bad type":       "schemas:\n  - name: A\n    fields:\n      - {name: x, type: \"a b\"}\n",
		"unresolved ref": "schemas:\n  - name: A\n    fields:\n      - {name: x, type: B}\n",
		"duplicate":      "schemas:\n  - name: A\n    fields:\n      - {name: x, type: string}\n      - {name: X, type: int}\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadRegistry([]byte(doc))
			assert.Error(t, err)
		})
	}
}
