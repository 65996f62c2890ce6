//go:build tools

package tools

// This file tracks tool dependencies for reproducible builds.
// Run `go mod tidy` after adding/removing tools here.
//
// oapi-codegen regenerates internal/api from api/openapi.yaml (go generate
// ./internal/api); goose runs ad-hoc migrations against
// internal/adapters/postgres/migrations outside corctl.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
