// Package main opens the calculator as a desktop window.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"interest-calc/adapters/desktop"
	"interest-calc/core/engine"
	"interest-calc/internal/config"
	"interest-calc/internal/logging"
)

const AppID = "io.github.interestcalc.desktop"

func main() {
	cfgFile := flag.String("config", config.DefaultPath(), "config file (.hcl or .json)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	a := app.NewWithID(AppID)
	w := a.NewWindow(desktop.WindowTitle)

	form := desktop.NewForm(engine.New(logging.Named("engine")))
	form.ShowIn(w)

	w.ShowAndRun()
}
