package main

import (
	"embed"
	"log/slog"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"go.aimuz.me/swatch/internal/app"
)

//go:embed all:frontend/dist
var assets embed.FS

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	slog.Info("starting app", "version", version, "commit", commit, "date", date)
	appService := app.New(version)

	wapp := application.New(application.Options{
		Name:        "Swatch",
		Description: "Screen color sampler with capture history",
		Services: []application.Service{
			application.NewService(appService),
		},
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(assets),
		},
		Mac: application.MacOptions{
			// Don't quit when all windows are closed (we have a system tray)
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
	})

	mainWindow := wapp.Window.NewWithOptions(application.WebviewWindowOptions{
		Title:  "Swatch",
		Width:  370,
		Height: 568,
		URL:    "/",
	})

	// Intercept window close: hide instead of destroy so tray can reopen
	mainWindow.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		e.Cancel()
		mainWindow.Hide()
	})

	appService.Init(wapp, mainWindow)

	systemTray := wapp.SystemTray.New()
	systemTray.SetLabel("Swatch")

	trayMenu := wapp.NewMenu()
	trayMenu.Add("Show Window").OnClick(func(ctx *application.Context) {
		appService.ShowWindow()
	})
	trayMenu.Add("Clear History").OnClick(func(ctx *application.Context) {
		if err := appService.ClearHistory(); err != nil {
			slog.Error("clear history from tray", "error", err)
		}
	})
	trayMenu.AddSeparator()
	trayMenu.Add("Quit").
		SetAccelerator("CmdOrCtrl+Q").
		OnClick(func(ctx *application.Context) {
			appService.Shutdown()
			wapp.Quit()
		})
	systemTray.SetMenu(trayMenu)

	if err := wapp.Run(); err != nil {
		slog.Error("run app", "error", err)
	}
}
