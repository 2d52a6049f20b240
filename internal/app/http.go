package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"members-portal/internal/auth"
	"members-portal/internal/auth/handler"
	"members-portal/internal/config"
	"members-portal/internal/session"
	"members-portal/internal/user"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore, err := session.NewRedisStore(infra.Redis.Client, cfg.SessionStoreSecret)
	if err != nil {
		return nil, nil, err
	}

	userStore := user.NewPostgresStore(infra.DB)
	authService := auth.NewService(userStore, cfg.StoreTimeout)

	pageHandler := handler.NewHandler(
		authService,
		sessionStore,
		cfg.SessionTTL,
		cfg.SessionSigningSecret,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(handler.Templates())
	router.Static("/public", "./public")

	pageHandler.RegisterRoutes(router)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
