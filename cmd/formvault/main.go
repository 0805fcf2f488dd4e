package main

import (
	"fmt"
	"log"

	"github.com/yongxin12/Macrohard/internal/config"
	"github.com/yongxin12/Macrohard/internal/formvault"
	"github.com/yongxin12/Macrohard/internal/handler"
	"github.com/yongxin12/Macrohard/internal/repository/postgres"
	"github.com/yongxin12/Macrohard/internal/router"
	"github.com/yongxin12/Macrohard/internal/service"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.VaultDB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	var cipher *formvault.Cipher
	if cfg.Vault.EncryptionKey != "" {
		cipher, err = formvault.NewCipher(cfg.Vault.EncryptionKey)
	} else {
		cipher, err = formvault.NewEphemeralCipher()
	}
	if err != nil {
		return fmt.Errorf("failed to initialize vault cipher: %w", err)
	}

	formRepo := postgres.NewFormRepo(db)
	filler := formvault.NewFiller(cfg.Vault.TemplateDir)

	authSvc := service.NewAuthService(cfg.JWT)
	formSvc := service.NewFormService(formRepo, cipher, filler)

	authH := handler.NewAuthHandler(authSvc)
	formH := handler.NewFormHandler(formSvc)
	healthH := handler.NewHealthHandler(version, "vault")

	r := router.SetupVault(authSvc, authH, formH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Form vault starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
