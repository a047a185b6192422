package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/x/explorer"
	"git.sr.ht/~whereswaldon/scrollchart/backend"
	"git.sr.ht/~whereswaldon/scrollchart/config"
)

func main() {
	dataPath := flag.String("data", "", "CSV file of x, y rows to chart, watched for changes; - reads stdin")
	configPath := flag.String("config", "", "TOML config file (default: config.toml in the user config dir)")
	statePath := flag.String("state", "", "TOML file chart state is saved to (default: state.toml in the user config dir)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed loading config: %v", err)
	}
	if *statePath == "" {
		*statePath, err = config.StatePath()
		if err != nil {
			log.Fatalf("failed locating state file: %v", err)
		}
	}

	go func() {
		w := app.NewWindow(app.Title("Scroll Chart"))
		if err := loop(w, cfg, *dataPath, *statePath); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadData(ds *backend.Datasource, dataPath string) {
	switch dataPath {
	case "":
	case "-":
		go func() {
			if err := ds.LoadFromStream("stdin", io.NopCloser(os.Stdin)); err != nil {
				log.Printf("failed reading stdin: %v", err)
			}
		}()
	default:
		if err := ds.Open(dataPath); err != nil {
			log.Printf("failed loading data: %v", err)
		}
	}
}

func loop(w *app.Window, cfg *config.Config, dataPath, statePath string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bundle, err := backend.NewBundle(ctx, statePath)
	if err != nil {
		return err
	}
	ws := backend.NewWindowState(ctx, bundle, w)
	loadData(ws.Datasource, dataPath)

	expl := explorer.NewExplorer(w)
	ui, err := NewUI(ws, expl, cfg)
	if err != nil {
		return err
	}
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			ui.Close()
			if err := backend.SaveState(statePath, ui.Snapshots()); err != nil {
				log.Printf("failed saving chart state: %v", err)
			}
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
