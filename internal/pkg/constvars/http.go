package constvars

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
	MIMEOctetStream     = "application/octet-stream"
	MIMEMultipartForm   = "multipart/form-data"
)

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "clinicore_session"
