package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facebookgo/flagenv"
	"github.com/joho/godotenv"

	"github.com/rgualdi/statico/serve"
	"github.com/rgualdi/statico/web"
)

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root folder of the site.")
		fMode              = flag.String("mode", "normal", "Serving mode: normal, prettyurl, or spa.")
	)
	_ = godotenv.Load()
	flag.Parse()
	flagenv.Parse()

	var mode serve.Mode
	if err := mode.UnmarshalText([]byte(*fMode)); err != nil {
		log.Printf("Bad mode flag: %s", err)
		os.Exit(1)
	}

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Open the site folder
	info, err := os.Stat(*fRoot)
	if err != nil || !info.IsDir() {
		log.Printf("Cannot serve root %q: not a folder", *fRoot)
		os.Exit(1)
	}
	fsys := os.DirFS(*fRoot)
	log.Printf("Serving %q", *fRoot)

	// Read the site config
	cfg, err := loadSiteConfig(fsys)
	if err != nil {
		log.Printf("Cannot load site config: %s", err)
		os.Exit(2)
	}
	var headers map[string]string
	notFoundPage := ""
	if cfg != nil {
		headers = cfg.Headers
		notFoundPage = cfg.NotFound
		if cfg.Mode != nil {
			// the site knows how it wants to be served
			mode = *cfg.Mode
		}
		log.Printf("Loaded %s", serve.ConfigFile)
	}
	log.Printf("Serving mode: %s", mode)

	// Parse the 404 page
	tpl, own, err := loadNotFound(fsys, notFoundPage)
	if err != nil {
		log.Printf("Cannot parse not-found page: %s", err)
		os.Exit(3)
	}
	if own {
		log.Printf("Loaded not-found page %q", notFoundPage)
	} else {
		log.Print("Using built-in not-found page.")
	}

	// Setup handlers
	fileServer, err := serve.New(fsys, &serve.Config{Mode: mode, NotFound: tpl})
	if err != nil {
		log.Printf("Cannot create server: %s", err)
		os.Exit(4)
	}
	srv.Handler = web.LogHandler(web.HeaderHandler(fileServer, headers))
	log.Print("Created handlers")

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Print("Listening for requests")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}
