package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/pthm/pagekit/lib/config"
)

func main() {
	fs := pflag.NewFlagSet("example", pflag.ExitOnError)
	cfgPath := fs.String("config", "", "configuration file")
	addr := fs.String("addr", ":8080", "listen address")
	config.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgPath, fs)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = "/"
	}

	// In production, use a real per-session token.
	srv := NewServer(NewStore(), cfg, "example-csrf-token")

	fmt.Printf("Starting server at http://localhost%s\n", *addr)
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
