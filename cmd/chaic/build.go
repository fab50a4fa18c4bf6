package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chaic/internal/config"
	"chaic/internal/irgen"
	"chaic/internal/lexer"
	"chaic/internal/lowering"
	"chaic/internal/parser"
	"chaic/internal/report"
)

const defaultTargetTriple = "x86_64-unknown-linux-gnu"

// resolveProject turns the CLI's primary path argument into a validated
// Project: a directory is expected to hold chaic.toml (§A.3); a bare
// source file gets a project descriptor synthesized around it so a single
// file can still be built without hand-writing a project every time.
func resolveProject(path string) (*config.Project, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return config.Load(path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(abs)
	base := filepath.Base(abs)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return &config.Project{
		Root:         dir,
		Name:         name,
		Entry:        base,
		TargetTriple: defaultTargetTriple,
		OutputPath:   filepath.Join(dir, name+".ll"),
		OutputFormat: config.FormatLLVMIR,
		LogLevel:     "warn",
	}, nil
}

// Build runs the full pipeline spec §6 names: tokenize, build the AST,
// lower it, and hand the resulting module to the back end's text emitter.
func Build(proj *config.Project) error {
	report.Phase("reading source")
	src, err := os.ReadFile(proj.EntryPath())
	if err != nil {
		return fmt.Errorf("reading %s: %w", proj.EntryPath(), err)
	}

	report.Phase("tokenizing")
	tokens := lexer.Tokenize(string(src))

	report.Phase("parsing")
	decls := parser.ParseFile(tokens)

	report.Phase("lowering")
	backend := irgen.NewBackend()
	backend.Module.TargetTriple = proj.TargetTriple

	ctx := lowering.NewLoweringContext(backend)
	lowering.LowerAll(ctx, decls)

	report.Phase("emitting " + proj.OutputFormat.String())
	return os.WriteFile(proj.OutputPath, []byte(backend.Module.String()), 0o644)
}
