package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahir-soa/FYP/internal/config"
	httpx "github.com/mahir-soa/FYP/internal/http"
	"github.com/mahir-soa/FYP/internal/http/handlers"
)

// Run wires the whole service together and serves until the listener fails.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	expenseH := handlers.NewExpenseHandlers(c.ExpenseRepo)
	subH := handlers.NewSubscriptionHandlers(c.SubscriptionRepo, c.SubscriptionSvc)
	fareH := handlers.NewFareHandlers(c.FareSvc)
	chatH := handlers.NewChatHandlers(c.ChatSvc, c.ConversationRepo)

	r := httpx.BuildRouter(cfg.FrontendURL, authH, expenseH, subH, fareH, chatH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
