// Package config loads and validates the one-file project descriptor,
// chaic.toml, that tells the driver what to compile and where to put the
// result. The language itself has no notion of modules or imports (spec
// §9's Non-goals); this descriptor is ambient tooling configuration, not a
// language feature.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ProjectFileName is the name chaic looks for inside a project directory.
const ProjectFileName = "chaic.toml"

// OutputFormat enumerates the supported values of [project.output].format.
type OutputFormat int

const (
	FormatLLVMIR OutputFormat = iota
	FormatObject
)

func (f OutputFormat) String() string {
	if f == FormatObject {
		return "obj"
	}
	return "llvm-ir"
}

var formatNames = map[string]OutputFormat{
	"llvm-ir": FormatLLVMIR,
	"obj":     FormatObject,
}

// Project is the validated, in-memory form of chaic.toml.
type Project struct {
	Name          string
	Entry         string
	TargetTriple  string
	OutputPath    string
	OutputFormat  OutputFormat
	LogLevel      string

	// Root is the directory chaic.toml was loaded from; Entry is resolved
	// relative to it.
	Root string
}

// tomlProjectFile mirrors chaic.toml's [project] table, following the
// teacher's tomlModuleFile/tomlModule nested-struct-with-tags shape.
type tomlProjectFile struct {
	Project *tomlProject `toml:"project"`
}

type tomlProject struct {
	Name         string           `toml:"name"`
	Entry        string           `toml:"entry"`
	TargetTriple string           `toml:"target-triple"`
	Output       *tomlProjectOutput `toml:"output"`
}

type tomlProjectOutput struct {
	Path     string `toml:"path"`
	Format   string `toml:"format"`
	LogLevel string `toml:"loglevel"`
}

// Load reads and validates chaic.toml from dir.
func Load(dir string) (*Project, error) {
	f, err := os.Open(filepath.Join(dir, ProjectFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tpf := &tomlProjectFile{}
	if err := toml.NewDecoder(f).Decode(tpf); err != nil {
		return nil, err
	}

	if tpf.Project == nil {
		return nil, fmt.Errorf("%s is missing its [project] table", ProjectFileName)
	}

	proj := &Project{Root: dir}
	if err := validateProject(proj, tpf.Project); err != nil {
		return nil, err
	}

	return proj, nil
}

// validateProject checks every required field explicitly, matching
// chai/mods.validateModule's field-by-field style, and reports missing or
// invalid values as plain errors rather than panics.
func validateProject(proj *Project, tp *tomlProject) error {
	if tp.Name == "" {
		return errors.New("project must specify a name")
	}
	proj.Name = tp.Name

	if tp.Entry == "" {
		return errors.New("project must specify an entry source file")
	}
	proj.Entry = tp.Entry

	if tp.TargetTriple == "" {
		return errors.New("project must specify a target-triple")
	}
	proj.TargetTriple = tp.TargetTriple

	if tp.Output == nil {
		return errors.New("project must specify an [project.output] table")
	}

	if tp.Output.Path == "" {
		return errors.New("project.output must specify a path")
	}
	proj.OutputPath = tp.Output.Path

	format, ok := formatNames[tp.Output.Format]
	if !ok {
		return fmt.Errorf("%q is not a supported output format", tp.Output.Format)
	}
	if format == FormatObject {
		return errors.New("output format \"obj\" is a stated external interface, not implemented by this front end")
	}
	proj.OutputFormat = format

	if tp.Output.LogLevel == "" {
		proj.LogLevel = "warn"
	} else {
		proj.LogLevel = tp.Output.LogLevel
	}

	return nil
}

// EntryPath returns the path to the project's entry source file: Entry
// joined onto Root, which is absolute only when Root is.
func (p *Project) EntryPath() string {
	return filepath.Join(p.Root, p.Entry)
}
