package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TechWithDunamix/govevote/internal/auth"
	"github.com/TechWithDunamix/govevote/internal/config"
	"github.com/TechWithDunamix/govevote/internal/httpapi"
	"github.com/TechWithDunamix/govevote/internal/registry"
	"github.com/TechWithDunamix/govevote/internal/store"
	"github.com/TechWithDunamix/govevote/internal/store/memory"
	"github.com/TechWithDunamix/govevote/internal/store/postgres"
	"github.com/TechWithDunamix/govevote/internal/verification"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var st store.Store
	var closer func()

	if cfg.DatabaseURL != "" {
		pg, err := postgres.NewStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to init postgres store: %v", err)
		}
		st = pg
		closer = pg.Close
		log.Printf("using postgres store")
	} else {
		st = memory.NewStore()
		log.Printf("using memory store")
	}

	if closer != nil {
		defer closer()
	}

	secret := cfg.JWTSecret
	if secret == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			log.Fatalf("failed to generate signing key: %v", err)
		}
		secret = hex.EncodeToString(b)
		log.Printf("GOVEVOTE_JWT_SECRET not set; using an ephemeral key, tokens will not survive restarts")
	}

	creds := auth.NewCredentials(st, cfg.BcryptCost)
	tokens := auth.NewTokens(secret, cfg.TokenTTL())
	reg := registry.New(st, verification.StaticOracle{})

	ctxBoot, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	created, err := creds.Bootstrap(ctxBoot, cfg.BootstrapUsername, cfg.BootstrapPassword)
	cancelBoot()
	if err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}
	if created {
		log.Printf("created default admin %q; change its password before going live", cfg.BootstrapUsername)
	}

	srv := httpapi.NewServer(cfg, st, creds, tokens, reg)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("govevote listening on %s", cfg.ListenAddr())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Printf("shutdown requested")
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)
}
