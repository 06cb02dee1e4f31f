package main

import (
	"context"
	"log"
	"os"

	"SignDesk/internal/backend"
	"SignDesk/internal/config"
	"SignDesk/internal/net"
	"SignDesk/internal/signing"
	"SignDesk/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	api := backend.NewClient(resolveBaseURL(cfg), backend.WithTimeout(cfg.HTTPTimeout))
	log.Printf("[API] backend at %s", api.BaseURL())
	app := ui.NewApp(cfg, api)

	args := os.Args
	if len(args) > 1 && signing.IsLink(args[1]) {
		runSigner(app, args[1])
	} else {
		runConsole(app)
	}
}

// resolveBaseURL prefers a backend announced over mDNS when discovery is on.
func resolveBaseURL(cfg config.Config) string {
	if !cfg.Discover {
		return cfg.BaseURL
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DiscoverTimeout+cfg.DiscoverTimeout/2)
	defer cancel()
	found, err := net.Discover(ctx, cfg.DiscoverTimeout)
	if err != nil {
		log.Printf("[MDNS] discovery failed, using %s: %v", cfg.BaseURL, err)
		return cfg.BaseURL
	}
	return found
}

func runSigner(app *ui.App, link string) {
	log.Println("Starting SIGNER")
	contractID, err := signing.ParseLink(link)
	if err != nil {
		log.Printf("[SIGN] %v", err)
	}
	app.RunSigner(contractID)
}

func runConsole(app *ui.App) {
	log.Println("Starting CONSOLE")
	app.RunConsole()
}
