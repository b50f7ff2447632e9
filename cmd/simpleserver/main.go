package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/rgualdi/statico/serve"
	"github.com/rgualdi/statico/web"
)

// simpleserver shows the minimal way to embed the library: a single-page
// application served from a folder, with client-side routing.
func main() {
	folder := flag.String("folder", "./dist", "Folder holding the application.")
	addr := flag.String("addr", ":9000", "Server address.")

	flag.Parse()

	srv, err := serve.New(os.DirFS(*folder), &serve.Config{Mode: serve.ModeSinglePageApp})
	if err != nil {
		log.Fatal(err)
	}

	// run the server
	log.Fatal(http.ListenAndServe(*addr, web.LogHandler(srv)))
}
