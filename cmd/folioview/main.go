package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"folio/pkg/config"
	"folio/pkg/document"
	"folio/pkg/script"
)

func main() {
	configPath := flag.String("c", "", "TOML settings file")
	verbose := flag.Bool("v", false, "enable verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: folioview [flags] <script.js>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	scriptPath := flag.Arg(0)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load settings", "err", err)
	}

	a := app.New()
	w := a.NewWindow("folio: " + scriptPath)
	w.Resize(fyne.NewSize(float32(cfg.Page.Width)+40, float32(cfg.Page.Height)+80))

	canvasImg := canvas.NewImageFromImage(nil)
	canvasImg.FillMode = canvas.ImageFillContain
	status := widget.NewLabel("Rendering " + scriptPath + "...")

	var pages []document.Page
	current := 0
	show := func(i int) {
		if i < 0 || i >= len(pages) {
			return
		}
		current = i
		canvasImg.Image = pages[i].Image
		canvasImg.Refresh()
		p := pages[i]
		status.SetText(fmt.Sprintf("Page %d of %d · used %g · %s", p.Number, len(pages), p.Used, p.State))
	}

	prev := widget.NewButton("Prev", func() { show(current - 1) })
	next := widget.NewButton("Next", func() { show(current + 1) })

	go func() {
		engine := script.New(script.WithLogger(logger), script.WithLayoutOptions(cfg.LayoutOptions(logger)...))
		root, err := engine.RunFile(scriptPath)
		if err != nil {
			fyne.Do(func() { status.SetText("Error: " + err.Error()) })
			return
		}
		sink := &document.MemorySink{}
		if _, err := document.Render(context.Background(), root, cfg.DocumentOptions(logger), sink); err != nil {
			fyne.Do(func() { status.SetText("Render error: " + err.Error()) })
			return
		}
		fyne.Do(func() {
			pages = sink.Pages
			show(0)
		})
	}()

	nav := container.NewHBox(prev, next, status)
	w.SetContent(container.NewBorder(nil, nav, nil, nil, canvasImg))
	w.ShowAndRun()
}
