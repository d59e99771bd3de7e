package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Beticesk/PROYECTO-FINAL/internal/auth"
	"github.com/Beticesk/PROYECTO-FINAL/internal/store"
	"github.com/Beticesk/PROYECTO-FINAL/internal/utils"
)

type UserHandler struct {
	Store  store.UserStore
	Hasher auth.Hasher
	Logger *slog.Logger
}

func NewUserHandler(st store.UserStore, hasher auth.Hasher, logger *slog.Logger) *UserHandler {
	return &UserHandler{Store: st, Hasher: hasher, Logger: logger}
}

// ----------- Request/Response DTOs -------------

type registerReq struct {
	Username string `json:"nombre_usuario"`
	Email    string `json:"correo_electronico"`
	Password string `json:"contrasena"`
	Role     string `json:"rol"`
}

type loginReq struct {
	Email    string `json:"correo_electronico"`
	Password string `json:"contrasena"`
}

type userResp struct {
	Message string `json:"message"`
	Usuario any    `json:"usuario"`
}

// -------------- REGISTER ----------------------

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		utils.Message(w, http.StatusBadRequest, "Todos los campos son obligatorios.")
		return
	}

	if len(req.Password) < 6 {
		utils.Message(w, http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres.")
		return
	}

	hash, err := h.Hasher.Hash(req.Password)
	if err != nil {
		h.Logger.Error("hashing password", "error", err)
		utils.Message(w, http.StatusInternalServerError, "Error interno del servidor al registrar el usuario.")
		return
	}

	u, err := h.Store.CreateUser(r.Context(), store.NewUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	})
	if errors.Is(err, store.ErrEmailTaken) {
		utils.Message(w, http.StatusConflict, "El correo electrónico ya está registrado.")
		return
	}
	if err != nil {
		h.Logger.Error("inserting user", "error", err)
		utils.Message(w, http.StatusInternalServerError, "Error interno del servidor al registrar el usuario.")
		return
	}

	h.Logger.Info("user registered", "id", u.ID, "email", u.Email)
	utils.JSON(w, http.StatusCreated, userResp{
		Message: "Usuario registrado exitosamente.",
		Usuario: u.Registered(),
	})
}

// -------------- LOGIN ------------------------

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.Message(w, http.StatusBadRequest, "Correo y contraseña son obligatorios.")
		return
	}

	u, err := h.Store.FindActiveByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		utils.Message(w, http.StatusNotFound, "Usuario no encontrado o inactivo.")
		return
	}
	if err != nil {
		h.Logger.Error("looking up user", "error", err)
		utils.Message(w, http.StatusInternalServerError, "Error interno del servidor en login.")
		return
	}

	if err := h.Hasher.Verify(req.Password, u.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			utils.Message(w, http.StatusUnauthorized, "Contraseña incorrecta.")
			return
		}
		// The stored hash did not parse: a data problem, not a bad credential.
		h.Logger.Error("verifying password", "error", err)
		utils.Message(w, http.StatusInternalServerError, "Error interno del servidor en login.")
		return
	}

	utils.JSON(w, http.StatusOK, userResp{
		Message: "Login exitoso.",
		Usuario: u.LoggedIn(),
	})
}

// -------------- ROOT -------------------------

// Root answers the status probe at GET /.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("API de Registro de Usuarios funcionando!"))
}
