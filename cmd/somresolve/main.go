// Command somresolve is a thin demonstration driver for the resolver. It
// is explicitly not the core: lexing, parsing, and diagnostic rendering
// are out of scope for the library, so this binary builds a
// small in-memory module tree by hand, runs it through resolver.Run, and
// prints the result — the same role funvibe-funxy/cmd/funxy plays for
// its own pipeline, minus everything upstream of the typed tree.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/somlang/som/internal/ast"
	"github.com/somlang/som/internal/config"
	"github.com/somlang/som/internal/registry"
	"github.com/somlang/som/internal/resolver"
	"github.com/somlang/som/internal/token"
)

// colorTTY decides whether to emit ANSI color, following the same
// IsTerminal/IsCygwinTerminal check funvibe-funxy's builtins_term.go uses
// before writing escape codes to stdout.
func colorTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func sampleModules() []*ast.ModuleInput {
	pos := token.Position{File: "main.som", Line: 1, Column: 1}
	return []*ast.ModuleInput{
		{
			Path: []string{"main"},
			Files: []*ast.File{
				{
					Path: "main.som",
					Declarations: []ast.Decl{
						&ast.ExternDecl{
							Tok: pos, Name: "assert", Visibility: registry.Private,
							Params: []ast.Param{{Name: "c", Type: &ast.NamedTypeExpr{Tok: pos, Name: "bool"}}},
							Return: &ast.NamedTypeExpr{Tok: pos, Name: "unit"},
						},
						&ast.ValueDecl{
							Tok: pos, Name: "two", Visibility: registry.Private,
							Value: &ast.FuncLit{
								Tok: pos,
								Body: &ast.BinaryExpr{
									Tok: pos, Op: "+",
									Left:  &ast.IntLit{Tok: pos, Value: 1},
									Right: &ast.IntLit{Tok: pos, Value: 1},
								},
							},
						},
					},
				},
			},
		},
	}
}

func main() {
	cfg := config.Default()
	if path := os.Getenv("SOMRESOLVE_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logLevel := slog.LevelWarn
	if cfg.StrictMode {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	r := resolver.New(cfg, logger)
	result := r.Run(sampleModules())

	color := colorTTY()
	if result.Ok() {
		printSuccess(color, result.RunID.String())
		return
	}
	for _, d := range result.Diagnostics {
		printDiagnostic(color, d)
	}
	os.Exit(1)
}

func printSuccess(color bool, runID string) {
	if color {
		fmt.Printf("\x1b[32mok\x1b[0m (run %s)\n", runID)
		return
	}
	fmt.Printf("ok (run %s)\n", runID)
}

func printDiagnostic(color bool, d interface{ Error() string }) {
	if color {
		fmt.Fprintf(os.Stderr, "\x1b[31merror\x1b[0m: %s\n", d.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", d.Error())
}
