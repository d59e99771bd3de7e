package handlers

import (
	"log/slog"

	"github.com/Beticesk/PROYECTO-FINAL/internal/auth"
	"github.com/Beticesk/PROYECTO-FINAL/internal/store"
)

type Handler struct {
	Users *UserHandler
}

func NewHandler(st store.UserStore, hasher auth.Hasher, logger *slog.Logger) *Handler {
	return &Handler{
		Users: NewUserHandler(st, hasher, logger),
	}
}
