package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kwv/tudopano/pano"
)

// App encapsulates the application state and dependencies
type App struct {
	Out io.Writer

	// CLI flags (effectively dependencies)
	InDir      string
	ConfigFile string
	Prefix     string
	Width      int
	Ceiling    int
	Quality    int
	SiteDir    string
	Port       int

	config *pano.Config
	// Base name of the loaded config file, shielded from cleanup.
	configName string
}

// NewApp creates a new App instance
func NewApp() *App {
	return &App{Out: os.Stdout}
}

// ApplyOptions applies CLI options to the App instance
func (a *App) ApplyOptions(opts AppOptions) {
	a.InDir = opts.InDir
	a.ConfigFile = opts.ConfigFile
	a.Prefix = opts.Prefix
	a.Width = opts.Width
	a.Ceiling = opts.Ceiling
	a.Quality = opts.Quality
	a.SiteDir = opts.SiteDir
	a.Port = opts.Port
}

// settings resolves the effective configuration once: file values first,
// then CLI overrides for any flag the user actually set. A missing config
// file is normal; a broken one is a warning, not a failure.
func (a *App) settings() *pano.Config {
	if a.config != nil {
		return a.config
	}

	cfg := pano.DefaultConfig()
	path := a.ConfigFile
	// The default config name is resolved relative to the input directory.
	if path == pano.DefaultConfigName {
		path = filepath.Join(a.InDir, pano.DefaultConfigName)
	}
	if _, err := os.Stat(path); err == nil {
		loaded, err := pano.LoadConfig(path)
		if err != nil {
			log.Printf("Warning: Failed to load config file %s: %v", path, err)
		} else {
			cfg = loaded
			a.configName = filepath.Base(path)
			log.Printf("Loaded config from %s", path)
		}
	}

	if a.Width > 0 {
		cfg.Width = a.Width
	}
	if a.Ceiling > 0 {
		cfg.Ceiling = a.Ceiling
	}
	if a.Quality > 0 {
		cfg.Quality = a.Quality
	}
	if a.Prefix != "" {
		cfg.Prefix = a.Prefix
	}
	if a.SiteDir != "" {
		cfg.Site.Dir = a.SiteDir
	}
	if cfg.Width > pano.MaxOutputWidth {
		log.Printf("Warning: configured width %d exceeds the %d pixel limit, clamping", cfg.Width, pano.MaxOutputWidth)
		cfg.Width = pano.MaxOutputWidth
	}

	a.config = cfg
	return cfg
}

// siteOutputDir resolves the gallery output directory against the input
// directory.
func (a *App) siteOutputDir(cfg *pano.Config) string {
	if filepath.IsAbs(cfg.Site.Dir) {
		return cfg.Site.Dir
	}
	return filepath.Join(a.InDir, cfg.Site.Dir)
}

// RunConvert processes every complete cube set in the input directory and
// then deletes the leftovers. Individual set failures are reported and
// their source files kept, but never fail the run.
func (a *App) RunConvert() error {
	cfg := a.settings()

	sets, err := pano.FindCubeSets(a.InDir)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		fmt.Fprintln(a.Out, "No cube map sets found.")
		return nil
	}
	fmt.Fprintf(a.Out, "Found %d cube set(s)\n", len(sets))

	keep := make(pano.KeepSet)
	if a.configName != "" {
		keep.Add(a.configName)
	}
	// The floor-plan image feeds the gallery; shield it from cleanup under
	// whatever casing it actually uses.
	for _, name := range pano.FindPlanImages(a.InDir, cfg.Site.PlanNames) {
		keep.Add(name)
	}

	proj := pano.EquirectProjector{}
	opts := pano.AssembleOptions{
		Width:        cfg.Width,
		Prefix:       cfg.Prefix,
		Ceiling:      cfg.Ceiling,
		Quality:      cfg.Quality,
		SceneKeyword: cfg.SceneKeyword,
		EditKeyword:  cfg.EditKeyword,
	}

	for _, base := range pano.SortedBases(sets) {
		fmt.Fprintf(a.Out, "Processing set %s...\n", base)
		res := pano.ProcessSet(a.InDir, base, sets[base], proj, opts)
		if res.Err != nil {
			fmt.Fprintf(a.Out, "  ERROR: %v\n", res.Err)
			fmt.Fprintf(a.Out, "  Keeping source files for %s\n", res.Base)
			for _, name := range res.Protected {
				keep.Add(name)
			}
			continue
		}
		if res.ScaleFactor != 1 {
			fmt.Fprintf(a.Out, "  Faces downscaled by %.3f to fit the %d pixel ceiling\n", res.ScaleFactor, cfg.Ceiling)
		}
		keep.Add(res.OutputName)
		fmt.Fprintf(a.Out, "  Saved %s (%dx%d)\n", res.OutputName, res.Width, res.Height)
	}

	fmt.Fprintln(a.Out, "Performing final cleanup...")
	deleted := pano.Cleanup(a.InDir, keep, cfg.KeepExtensions)
	for _, name := range deleted {
		fmt.Fprintf(a.Out, "  Deleted: %s\n", name)
	}
	fmt.Fprintln(a.Out, "Cleanup complete.")
	return nil
}

// RunSite generates the static gallery from the panoramas in the input
// directory.
func (a *App) RunSite() error {
	cfg := a.settings()
	outDir := a.siteOutputDir(cfg)

	fmt.Fprintf(a.Out, "Building site in %s...\n", outDir)
	err := pano.BuildSite(a.InDir, pano.SiteOptions{
		OutputDir:  outDir,
		PlanNames:  cfg.Site.PlanNames,
		ThumbWidth: cfg.Site.ThumbWidth,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Site generated: %s\n", filepath.Join(outDir, "index.html"))
	fmt.Fprintln(a.Out, "Use --serve to preview it locally.")
	return nil
}

// RunServe serves the generated gallery over HTTP until interrupted.
func (a *App) RunServe() error {
	cfg := a.settings()
	outDir := a.siteOutputDir(cfg)

	if _, err := os.Stat(filepath.Join(outDir, "index.html")); err != nil {
		log.Printf("Warning: no index.html in %s; run with --site first", outDir)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.Port),
		Handler: newSiteServer(outDir),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	fmt.Fprintf(a.Out, "Serving %s on http://localhost:%d\n", outDir, a.Port)
	fmt.Fprintln(a.Out, "Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Fprintln(a.Out, "\nShutting down...")
	return srv.Close()
}
