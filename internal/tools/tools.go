//go:build tools
// +build tools

package tools

import (
	_ "github.com/jackc/tern/v2"
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
)

// This file declares dependencies on tool for `go.mod` purposes.
// See https://github.com/golang/go/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module
// for an explanation of the approach used here.
