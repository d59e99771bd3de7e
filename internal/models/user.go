package models

import "time"

// User mirrors one row of the usuarios table. The hash and the update
// timestamp never serialize; responses go out through the view types below.
type User struct {
	ID           string    `db:"id_usuario" json:"id_usuario"`
	Username     string    `db:"nombre_usuario" json:"nombre_usuario"`
	Email        string    `db:"correo_electronico" json:"correo_electronico"`
	PasswordHash string    `db:"contrasena_hash" json:"-"`
	Role         string    `db:"rol" json:"rol"`
	Active       bool      `db:"activo" json:"activo"`
	CreatedAt    time.Time `db:"fecha_creacion" json:"fecha_creacion"`
	UpdatedAt    time.Time `db:"fecha_actualizacion" json:"-"`
}

// RegisteredView is the sanitized record returned after registration.
type RegisteredView struct {
	ID        string    `json:"id_usuario"`
	Username  string    `json:"nombre_usuario"`
	Email     string    `json:"correo_electronico"`
	Role      string    `json:"rol"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"fecha_creacion"`
}

// LoginView is the smaller subset returned after a successful login.
type LoginView struct {
	ID       string `json:"id_usuario"`
	Username string `json:"nombre_usuario"`
	Email    string `json:"correo_electronico"`
	Role     string `json:"rol"`
}

func (u *User) Registered() RegisteredView {
	return RegisteredView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func (u *User) LoggedIn() LoginView {
	return LoginView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
