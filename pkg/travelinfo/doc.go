// Package travelinfo holds the records of the NS travel information API
// (reisinformatie-api). The types and their decoders are generated from
// schemas.yaml; hooks.go adds the few conversions a schema cannot express.
package travelinfo

//go:generate go run nstravel/cmd/nsgen -in schemas.yaml -out zz_generated.go -package travelinfo
