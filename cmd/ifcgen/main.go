// Command ifcgen converts drawing documents into IFC4 STEP files.
// It provides commands for one-shot export, output verification, and a
// watch mode that re-exports on change and notifies viewers.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"

	"github.com/stratumcad/ifcgen/core/dxf"
	"github.com/stratumcad/ifcgen/core/export"
	"github.com/stratumcad/ifcgen/core/model"
	"github.com/stratumcad/ifcgen/core/verify"
	"github.com/stratumcad/ifcgen/internal/config"
	"github.com/stratumcad/ifcgen/internal/logging"
	"github.com/stratumcad/ifcgen/internal/watch"
)

const version = "0.1.0"

// CLI defines the command-line interface for ifcgen.
var CLI struct {
	// Global flags
	Config string `name:"config" short:"c" help:"Config file path" type:"path" default:"ifcgen.yaml"`

	Export    ExportCmd    `cmd:"" help:"Export a drawing document to an IFC file"`
	ExportDxf ExportDxfCmd `cmd:"" name:"export-dxf" help:"Export a drawing document's 2D geometry to a DXF file"`
	Verify    VerifyCmd    `cmd:"" help:"Verify an IFC file's referential integrity"`
	Watch     WatchCmd     `cmd:"" help:"Re-export on change and notify viewers over WebSocket"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// loadOptions merges the config file into generator options.
func loadOptions(configPath string) (export.Options, export.WriteOptions, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return export.Options{}, export.WriteOptions{}, err
	}

	format := logging.FormatText
	if cfg.Log.Format == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(logging.ParseLevel(cfg.Log.Level), format)

	opts := export.Options{
		ProjectName:        cfg.Project,
		Author:             cfg.Author,
		Organization:       cfg.Organization,
		Application:        "ifcgen",
		ApplicationVersion: version,
		WallHeight:         cfg.WallHeight,
		PileLength:         cfg.PileLength,
	}
	writeOpts := export.WriteOptions{
		Compression: export.CompressionType(cfg.Compression),
	}
	return opts, writeOpts, nil
}

// ExportCmd exports a drawing document once.
type ExportCmd struct {
	In  string `arg:"" help:"Drawing document (JSON)" type:"existingfile"`
	Out string `name:"out" short:"o" help:"Output IFC path" default:"model.ifc"`
}

func (c *ExportCmd) Run() error {
	opts, writeOpts, err := loadOptions(CLI.Config)
	if err != nil {
		return err
	}

	doc, err := model.LoadDocument(c.In)
	if err != nil {
		return err
	}

	started := time.Now()
	result, err := export.Generate(doc, opts)
	if err != nil {
		return fmt.Errorf("failed to generate IFC: %w", err)
	}

	if err := export.WriteFile(c.Out, result, writeOpts); err != nil {
		return err
	}

	logging.ExportEvent(c.Out, result.EntityCount, result.FileSize, time.Since(started))
	fmt.Printf("Exported: %s\n", c.Out)
	fmt.Printf("  Entities: %d\n", result.EntityCount)
	fmt.Printf("  Size: %d bytes\n", result.FileSize)
	for kind, count := range result.Skipped {
		fmt.Printf("  Skipped %s: %d\n", kind, count)
	}
	return nil
}

// ExportDxfCmd exports the plain 2D geometry of a drawing document as
// DXF for exchange with external CAD programs.
type ExportDxfCmd struct {
	In  string `arg:"" help:"Drawing document (JSON)" type:"existingfile"`
	Out string `name:"out" short:"o" help:"Output DXF path" default:"drawing.dxf"`
}

func (c *ExportDxfCmd) Run() error {
	doc, err := model.LoadDocument(c.In)
	if err != nil {
		return err
	}

	result := dxf.Generate(doc.Shapes)
	if err := os.WriteFile(c.Out, []byte(result.Content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Out, err)
	}

	fmt.Printf("Exported: %s\n", c.Out)
	fmt.Printf("  Entities: %d\n", result.EntityCount)
	for kind, count := range result.Skipped {
		fmt.Printf("  Skipped %s: %d\n", kind, count)
	}
	return nil
}

// VerifyCmd checks an exported file against the format invariants.
type VerifyCmd struct {
	Path string `arg:"" help:"IFC file to verify" type:"existingfile"`
}

func (c *VerifyCmd) Run() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Path, err)
	}

	report, err := verify.Check(string(data))
	if err != nil {
		return err
	}

	fmt.Printf("Schema: %s\n", report.Schema)
	fmt.Printf("Entities: %d\n", report.EntityCount)
	if !report.OK() {
		for _, v := range report.Violations {
			fmt.Printf("  VIOLATION: %s\n", v)
		}
		return fmt.Errorf("%d violation(s) found", len(report.Violations))
	}
	fmt.Println("OK")
	return nil
}

// WatchCmd re-exports on input change and serves export events over
// WebSocket.
type WatchCmd struct {
	In       string        `arg:"" help:"Drawing document to watch" type:"existingfile"`
	Out      string        `name:"out" short:"o" help:"Output IFC path" default:"model.ifc"`
	Addr     string        `name:"addr" help:"WebSocket listen address" default:":8473"`
	Interval time.Duration `name:"interval" help:"Poll interval" default:"500ms"`
}

func (c *WatchCmd) Run() error {
	opts, writeOpts, err := loadOptions(CLI.Config)
	if err != nil {
		return err
	}

	hub := watch.NewHub()
	go hub.Run()

	mux := http.NewServeMux()
	mux.Handle("/ws", hub.Handler())
	server := &http.Server{Addr: c.Addr, Handler: mux}
	go func() {
		logging.Info("websocket server listening", "addr", c.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("websocket server failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher := &watch.Watcher{
		Input:        c.In,
		Output:       c.Out,
		Interval:     c.Interval,
		Options:      opts,
		WriteOptions: writeOpts,
		Hub:          hub,
	}
	err = watcher.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(shutdownCtx)

	if err == context.Canceled {
		return nil
	}
	return err
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("ifcgen %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ifcgen"),
		kong.Description("ifcgen - IFC4 STEP export for drawing documents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
