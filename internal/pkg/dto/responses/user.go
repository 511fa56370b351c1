package responses

import "clinicore-service/internal/app/models"

type NewUser struct {
	NewUser *models.User `json:"newUser"`
}

type User struct {
	User *models.User `json:"user"`
}

type Users struct {
	Users []models.User `json:"users"`
}

type UpdatedUser struct {
	Updated *models.User `json:"updated"`
}

type DeletedUser struct {
	Result *models.User `json:"result"`
}

type Doctors struct {
	Doctors []models.User `json:"doctors"`
}

type Message struct {
	Message string `json:"message"`
}
