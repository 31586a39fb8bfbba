// Command gmail-auth runs the one-time OAuth consent flow and stores the
// token the API's Gmail watcher reads on startup.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/config"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	oauthConfig, err := auth.GmailOAuthConfig(cfg.Gmail.CredentialsFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	tok, err := auth.TokenFromWeb(context.Background(), oauthConfig, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := auth.SaveToken(cfg.Gmail.TokenFile, tok); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("saved gmail token to %s", cfg.Gmail.TokenFile)
}
