// Package cli is the command-line entry point: it parses flags, applies them
// as setting overrides, loads the dataset, and starts the Fyne application.
package cli

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/animal-facts/internal/config"
	"github.com/ytget/animal-facts/internal/dataset"
	"github.com/ytget/animal-facts/internal/ui"
)

const (
	AppID   = "com.ytget.animal-facts"
	AppName = "Animal Fun Facts"
)

// Launcher starts the application with the given flag overrides
type Launcher func(version string, overrides config.Overrides) error

// Execute runs the root command and exits non-zero on failure
func Execute(version string) {
	cmd := newRootCmd(version, launch)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(version string, launcher Launcher) *cobra.Command {
	var (
		title      string
		background bool
		dataPath   string
		language   string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:          "animal-facts",
		Short:        "Click an animal, get a random fun fact",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			// Only flags the user set override stored settings
			var o config.Overrides
			if flags.Changed("title") {
				o.Title = &title
			}
			if flags.Changed("background") {
				o.ShowBackground = &background
			}
			if flags.Changed("data") {
				o.DataPath = &dataPath
			}
			if flags.Changed("lang") {
				o.Language = &language
			}
			if flags.Changed("debug") {
				o.Debug = &debug
			}

			return launcher(version, o)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title text; empty restores the default")
	cmd.Flags().BoolVar(&background, "background", config.DefaultShowBackground, "show the background banner")
	cmd.Flags().StringVar(&dataPath, "data", "", "YAML dataset file; empty uses the built-in animals")
	cmd.Flags().StringVar(&language, "lang", "", "interface language (system, en, ru, pt)")
	cmd.Flags().BoolVar(&debug, "debug", config.DefaultDebug, "verbose logging with source locations")
	return cmd
}

// launch creates the Fyne app and blocks until the window is closed
func launch(version string, overrides config.Overrides) error {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewOceanTheme())

	settings := config.NewSettings(myApp)
	settings.Apply(overrides)
	setupLogging(settings.GetDebug())

	data, err := dataset.LoadPath(settings.GetDataPath())
	if err != nil {
		log.Printf("Failed to load dataset: %v", err)
		return fmt.Errorf("load dataset: %w", err)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	}

	if _, err := ui.NewRootUI(myWindow, settings, data, nil); err != nil {
		return fmt.Errorf("create UI: %w", err)
	}

	myWindow.ShowAndRun()
	return nil
}

// setupLogging adds source locations to log lines in debug mode
func setupLogging(debug bool) {
	if debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
		return
	}
	log.SetFlags(log.LstdFlags)
}
