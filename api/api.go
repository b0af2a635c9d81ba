// Package api holds the OpenAPI document of the HTTP surface. Server stubs in
// internal/generated/servers are generated from it:
//
//	oapi-codegen -generate types,server -package servers api/openapi.yaml
package api

import _ "embed"

// Spec is the raw OpenAPI 3 document.
//
//go:embed openapi.yaml
var Spec []byte
