// Package main is the entrypoint of the ytcli desktop app.
package main

import (
	"fmt"
	"os"

	"ytcli/internal/command/execute"
	"ytcli/internal/database"
	"ytcli/internal/domain/paths"
	"ytcli/internal/gui"
	"ytcli/internal/interfaces"
	"ytcli/internal/repo"
	"ytcli/internal/utils/logging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

func main() {
	var history interfaces.HistoryStore

	if err := paths.InitProgFilesDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "ytcli: %v, continuing without history and log file\n", err)
	} else {
		if err := logging.SetupLogging(paths.YtcliLogFilePath); err != nil {
			fmt.Fprintf(os.Stderr, "ytcli: could not set up logging, proceeding without: %v\n", err)
		}
		if db, err := database.InitDB(paths.DBFilePath); err != nil {
			logging.W("History disabled: %v", err)
		} else {
			defer db.Close()
			history = repo.InitStores(db.DB).HistoryStore()
		}
	}
	defer logging.Close()

	a := app.NewWithID("com.ytcli.gui")
	w := a.NewWindow("ytcli")
	w.Resize(fyne.NewSize(640, 420))

	gui.New(w, a, execute.New(), history)

	w.ShowAndRun()
}
