//go:build tools

// This file exists to pin golang.org/x/tools/cmd/stringer as a go.mod
// dependency without it becoming a runtime import, the standard
// pre-Go-1.24 tool-pinning pattern. internal/scope/kind_string.go and
// internal/registry/visibility_string.go are generated by it (see the
// go:generate directives on Kind and Visibility).
package tools

import _ "golang.org/x/tools/cmd/stringer"
