package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-directory-portal/config"
	"github.com/oksasatya/go-directory-portal/internal/application"
	"github.com/oksasatya/go-directory-portal/internal/bootstrap"
	"github.com/oksasatya/go-directory-portal/internal/infrastructure/kvstore"
	"github.com/oksasatya/go-directory-portal/pkg/helpers"
)

// seed registers a demo account in the configured store.
// It is a no-op for the memory driver, which does not outlive the process.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	if cfg.StoreDriver == "memory" {
		log.Println("STORE_DRIVER=memory; nothing to seed")
		return
	}

	ctx := context.Background()
	storage, err := bootstrap.OpenStorage(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer storage.Close()

	accounts := kvstore.NewAccountRepository(storage.Store, logger, 0)
	auth := application.NewAuthService(accounts, storage.Store, logger, nil, nil)

	in := application.RegisterInput{
		Name:     "Demo User",
		Username: "demo_user",
		Email:    "demo@example.com",
		Password: "Password1!",
		Confirm:  "Password1!",
	}
	clientID := uuid.NewString()
	acct, err := auth.Register(ctx, clientID, in)
	// the seed client never logs in through a browser
	auth.Logout(ctx, clientID)

	var verr *application.ValidationError
	switch {
	case err == nil:
		fmt.Printf("seeded account: id=%d email=%s username=%s password=%s\n", acct.ID, acct.Email, acct.Username, in.Password)
	case errors.As(err, &verr) && verr.Fields["email"] == "Email already registered":
		fmt.Printf("account %s already present\n", in.Email)
	default:
		log.Fatalf("failed to seed account: %v", err)
	}
}
