package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	infoColorFG  = pterm.FgLightGreen
)

const fatalErrorPostlude = "compilation cannot continue; no error recovery is implemented."

func displayFatal(phase, msg string) {
	fmt.Print("\n")
	errorStyleBG.Print(" Fatal Error ")
	errorColorFG.Println(" " + msg)
	fmt.Printf("phase: %s\n", phase)
	infoColorFG.Println(fatalErrorPostlude)
}

func displayICE(msg string) {
	fmt.Print("\n")
	errorStyleBG.Print(" Internal Compiler Error ")
	errorColorFG.Println(" " + msg)
	infoColorFG.Println("this should not happen -- please file an issue with a reproduction")
}

func displayWarning(phase, msg string) {
	warnStyleBG.Print(" Warning ")
	warnColorFG.Println(fmt.Sprintf(" [%s] %s", phase, msg))
}

var phaseSpinner *pterm.SpinnerPrinter

func displayPhase(name string) {
	if phaseSpinner != nil {
		phaseSpinner.Success()
	}

	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(infoColorFG))
	phaseSpinner.Start(name + "...")
}

// EndPhase closes out the current phase spinner, if one is active. The
// driver calls this once after the final phase completes.
func EndPhase() {
	if phaseSpinner != nil {
		phaseSpinner.Success()
		phaseSpinner = nil
	}
}
