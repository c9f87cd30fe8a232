//go:build tools

// Package tools pins the development binaries: mockery regenerates
// gen/mockery from .mockery.yaml, addlicense stamps the Apache header.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/google/addlicense"
	_ "github.com/vektra/mockery/v2"
	_ "gotest.tools/gotestsum"
)
