package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kwv/tudopano/pano"
)

// Version is set at build time via -ldflags
var Version = "dev"

// AppOptions carries the parsed CLI flags into the application.
type AppOptions struct {
	InDir      string
	ConfigFile string
	Prefix     string
	Width      int
	Ceiling    int
	Quality    int
	Site       bool
	SiteDir    string
	Serve      bool
	Port       int
}

// appRunner is the surface main drives; App implements it.
type appRunner interface {
	ApplyOptions(opts AppOptions)
	RunConvert() error
	RunSite() error
	RunServe() error
}

func run(args []string, out io.Writer, app appRunner) error {
	fs := flag.NewFlagSet("tudopano", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		showVersion = fs.Bool("version", false, "Print version and exit")
		inDir       = fs.String("indir", ".", "Directory containing cube face images")
		configFile  = fs.String("config", pano.DefaultConfigName, "Path to configuration file (optional)")
		prefix      = fs.String("prefix", "", "Prefix for panorama output filenames")
		width       = fs.Int("width", 0, "Panorama width in pixels (default 4096, or from config)")
		ceiling     = fs.Int("ceiling", 0, "Maximum face side before downscaling (default 30000)")
		quality     = fs.Int("quality", 0, "JPEG quality 1-100 (default 95)")
		site        = fs.Bool("site", false, "Build the static gallery after conversion")
		siteDir     = fs.String("site-dir", "", "Gallery output directory (default <indir>/docs)")
		serve       = fs.Bool("serve", false, "Serve the generated gallery over HTTP")
		port        = fs.Int("port", 8080, "HTTP port for --serve")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(out, "tudopano version: %s\n", Version)
	if *showVersion {
		return nil
	}

	if *width > pano.MaxOutputWidth {
		fmt.Fprintf(out, "Warning: width %d exceeds the %d pixel limit, clamping\n", *width, pano.MaxOutputWidth)
		*width = pano.MaxOutputWidth
	}

	app.ApplyOptions(AppOptions{
		InDir:      *inDir,
		ConfigFile: *configFile,
		Prefix:     *prefix,
		Width:      *width,
		Ceiling:    *ceiling,
		Quality:    *quality,
		Site:       *site,
		SiteDir:    *siteDir,
		Serve:      *serve,
		Port:       *port,
	})

	// --serve on its own just serves an already generated gallery; combined
	// with --site it runs the full pipeline first.
	if *serve && !*site {
		return app.RunServe()
	}

	if err := app.RunConvert(); err != nil {
		return err
	}
	if *site {
		if err := app.RunSite(); err != nil {
			return err
		}
	}
	if *serve {
		return app.RunServe()
	}
	return nil
}

func main() {
	app := NewApp()
	if err := run(os.Args[1:], os.Stdout, app); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("tudopano: %v", err)
	}
}
