// Package spec embeds the OpenAPI document for the toll plaza API.
// The server serves it at /openapi.yaml and the handler package generates
// its gen package from it.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
