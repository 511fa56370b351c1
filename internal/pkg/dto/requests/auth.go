package requests

// Login mirrors the frontend payload: the login name travels as "user".
type Login struct {
	User     string `json:"user"`
	Password string `json:"password"`
}
