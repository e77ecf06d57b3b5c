//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq generates the *_mock_test.go files (see go:generate directives)
// - github.com/pressly/goose/v3/cmd/goose applies migrations/ manually (also listed as a go tool)
