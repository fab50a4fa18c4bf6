// Command chaic is the front end's command-line driver. Per spec §6, its
// job is strictly to locate the input, tokenize it, build the AST, lower
// it, and hand the resulting module to the back end's text emitter -- it
// contains no language semantics of its own.
package main

import (
	"fmt"
	"os"

	"github.com/ComedicChimera/olive"

	"chaic/internal/report"
)

const version = "0.1.0"

func main() {
	cli := olive.NewCLI("chaic", "chaic compiles chai-like source into LLVM IR", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("")

	buildCmd := cli.AddSubcommand("build", "compile a source file or project", true)
	buildCmd.AddPrimaryArg("path", "a source file, or a directory containing chaic.toml", true)

	cli.AddSubcommand("version", "print the chaic version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuild(subResult, result.Arguments["loglevel"].(string))
	case "version":
		fmt.Println("chaic", version)
	default:
		fmt.Fprintln(os.Stderr, "no subcommand given; try 'chaic build <path>' or 'chaic version'")
		os.Exit(1)
	}
}

// execBuild runs the build subcommand: resolve the project, then run the
// pipeline against its entry file.
func execBuild(result *olive.ArgParseResult, logLevelFlag string) {
	path, _ := result.PrimaryArg()

	proj, err := resolveProject(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if logLevelFlag != "" {
		proj.LogLevel = logLevelFlag
	}
	report.Init(parseLogLevel(proj.LogLevel))

	if err := Build(proj); err != nil {
		report.Fatal("driver", "%s", err.Error())
	}

	report.EndPhase()
	report.FlushWarnings()
}

func parseLogLevel(s string) int {
	switch s {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "verbose":
		return report.LogLevelVerbose
	default:
		return report.LogLevelWarn
	}
}
