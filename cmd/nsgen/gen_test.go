package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nstravel/pkg/nsdata"
	"nstravel/pkg/travelinfo"
)

func TestGeneratedFileIsCurrent(t *testing.T) {
	want, err := os.ReadFile("../../pkg/travelinfo/zz_generated.go")
	require.NoError(t, err)

	got, err := Generate(travelinfo.SchemaFile(), "schemas.yaml", "travelinfo")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "zz_generated.go is stale, run go generate ./pkg/travelinfo")
}

func TestGoName(t *testing.T) {
	cases := map[string]string{
		"name":             "Name",
		"UICCode":          "UICCode",
		"tripRequestId":    "TripRequestID",
		"shareUrl":         "ShareURL",
		"evaNumber":        "EVANumber",
		"idx":              "Idx",
		"uicCode":          "UICCode",
		"journeyDetailRef": "JourneyDetailRef",
		"id":               "ID",
		"ctxRecon":         "CtxRecon",
	}
	for in, want := range cases {
		assert.Equal(t, want, GoName(in), in)
	}
}

func TestGoTypeAndDecoder(t *testing.T) {
	cases := []struct {
		typ, goType, decode string
	}{
		{"string", "string", `nsdata.Required(d, "f", nsdata.AsString)`},
		{"?int", "*int", `nsdata.OptField(d, "f", nsdata.AsInt)`},
		{"?date-time", "*time.Time", `nsdata.OptField(d, "f", nsdata.AsDateTime)`},
		{"Stop[]", "[]Stop", `nsdata.Required(d, "f", nsdata.AsList(nsdata.AsRecord("Stop", decodeStop)))`},
		{"?string[]", "[]string", `nsdata.OptValue(d, "f", nsdata.AsList(nsdata.AsString))`},
		{"?object", "any", `nsdata.OptValue(d, "f", nsdata.AsAny)`},
		{"map[float]", "map[string]float64", `nsdata.Required(d, "f", nsdata.AsMap(nsdata.AsFloat))`},
	}
	for _, c := range cases {
		typ, err := nsdata.ParseType(c.typ)
		require.NoError(t, err, c.typ)
		assert.Equal(t, c.goType, goType(typ), c.typ)
		assert.Equal(t, c.decode, decodeExpr("f", typ), c.typ)
	}
}

func TestGenerateWithoutDates(t *testing.T) {
	src, err := Generate([]byte(`
schemas:
  - name: Point
    fields:
      - {name: lat, type: float}
      - {name: label, type: "?string", doc: shown on the map}
`), "points.yaml", "geo")
	require.NoError(t, err)

	s := string(src)
	assert.True(t, strings.HasPrefix(s, "// Code generated by nsgen from points.yaml. DO NOT EDIT.\n\npackage geo\n"))
	assert.NotContains(t, s, `"time"`)
	assert.Contains(t, s, "// shown on the map\n")
	assert.Contains(t, s, "func DecodePoint(m map[string]any, opts ...nsdata.Option) (Point, error) {")
	assert.Contains(t, s, `v.Label = nsdata.OptField(d, "label", nsdata.AsString)`)
}

func TestGenerateRejectsBadType(t *testing.T) {
	_, err := Generate([]byte(`
schemas:
  - name: Point
    fields:
      - {name: lat, type: "float-list"}
`), "points.yaml", "geo")
	assert.Error(t, err)
}
