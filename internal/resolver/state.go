package resolver

import (
	"github.com/somlang/som/internal/ast"
	"github.com/somlang/som/internal/types"
)

// fileState carries the per-file bookkeeping that must survive from pass2
// into pass3 even though Private names never touch the module registry:
// private declarations in different files of the same module may share
// a name, so each file's private names have to be tracked separately.
// Keyed by *ast.File pointer identity, since the same File values flow
// through all three passes.
type fileState struct {
	privateTypes  map[string]types.Type
	privateValues map[string]types.Type
}

func newFileState() *fileState {
	return &fileState{
		privateTypes:  make(map[string]types.Type),
		privateValues: make(map[string]types.Type),
	}
}

// moduleState is the per-module bookkeeping the resolver keeps across
// passes: the module's input and one fileState per file.
type moduleState struct {
	input *ast.ModuleInput
	files map[*ast.File]*fileState
}

func newModuleState(input *ast.ModuleInput) *moduleState {
	ms := &moduleState{input: input, files: make(map[*ast.File]*fileState)}
	for _, f := range input.Files {
		ms.files[f] = newFileState()
	}
	return ms
}
