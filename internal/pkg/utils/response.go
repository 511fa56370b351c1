package utils

import (
	"errors"
	"net/http"

	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type errorBody struct {
	Error      string `json:"error"`
	DevMessage string `json:"devMessage,omitempty"`
}

// BuildSuccessResponse writes the payload as-is. The wire format is the
// original frontend contract, so handlers own their response keys.
func BuildSuccessResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// BuildErrorResponse maps any error to {"error": <message>} and logs the
// developer message with its origin. Unknown error types become a generic 500
// so internal detail never leaks.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	body := errorBody{Error: clientMessage}
	if customErr != nil && GetEnvString("APP_ENV", "development") != "production" {
		body.DevMessage = customErr.DevMessage
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
