// Package configtoml provides typed, read-only configuration snapshots built from TOML documents.
//
// Quick Start:
//
//	snap, err := configtoml.NewSnapshot(data, "app.toml", configtoml.ParsingOptions{
//	    SecretsSpecifier: configtoml.SecretsKeys("database.password"),
//	})
//
//	res, err := snap.Lookup(configtoml.ParseKey("server.port"), configtoml.TypeInt)
//	if res.Value != nil {
//	    port := res.Value.Value.(int)
//	}
//
// Nested tables flatten to dot-separated keys ([server.ssl] enabled = true -> "server.ssl.enabled").
// Lookups never coerce between kinds: an integer is not a double, a string is not an int.
// TOML date and time literals are exposed as strings.
//
// See example_test.go and sourcefile for file-backed providers.
package configtoml
