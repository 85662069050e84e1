package types

import "errors"

// ErrAlreadyResolved is returned by Table.Resolve when a handle's body has
// already been filled in.
var ErrAlreadyResolved = errors.New("type handle already resolved")

// ErrUnknownHandle is returned when a handle was never issued by this
// table's DeclareForward.
var ErrUnknownHandle = errors.New("unknown type handle")
