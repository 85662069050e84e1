package scope

import "errors"

// ErrDuplicate is returned by DeclareType/DeclareValue when name is
// already bound in the receiving scope.
var ErrDuplicate = errors.New("name already declared in this scope")

// ErrNotFound is returned by LookupType/LookupValue when no ancestor
// scope binds name.
var ErrNotFound = errors.New("name not found in scope chain")
