package registry

import "errors"

// ErrUnknownModule is returned by Get for an unregistered module path.
var ErrUnknownModule = errors.New("unknown module")

// ErrCollision is returned by DeclareIn when a non-private name is
// already registered in the same module and namespace.
var ErrCollision = errors.New("duplicate top-level name")

// ErrSealed is returned by any mutating call made after Seal.
var ErrSealed = errors.New("registry is sealed")
