package main

import (
	"os"

	"github.com/agbru/numfmt/internal/app"
	apperrors "github.com/agbru/numfmt/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		os.Exit(apperrors.ExitCodeFor(err))
	}

	os.Exit(application.Run(os.Stdout))
}
