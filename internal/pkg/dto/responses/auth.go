package responses

import "clinicore-service/internal/app/models"

type Login struct {
	Login string `json:"login"`
}

type Logout struct {
	Logout string `json:"logout"`
}

type CheckAuth struct {
	UserID string      `json:"userId"`
	Role   models.Role `json:"role"`
}

// SessionIdentity is the usecase-level login result; the controller turns the
// token into a cookie and never exposes it in the body.
type SessionIdentity struct {
	UserID string      `json:"-"`
	Role   models.Role `json:"-"`
	Token  string      `json:"-"`
}
