package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"datetime": "must be a valid date",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients. The auth and lookup messages are part of the
// wire contract consumed by the frontend, keep them verbatim.
const (
	ErrClientMissingCredentials            = "Username and password required"
	ErrClientInvalidCredentials            = "Invalid credentials"
	ErrClientUnauthorized                  = "Unauthorized"
	ErrClientForbidden                     = "Forbidden"
	ErrClientCouldNotLogOut                = "Could not log out"
	ErrClientEmailAlreadyExists            = "Email already exists"
	ErrClientMissingRequiredFields         = "Missing required fields"
	ErrClientNoIDProvided                  = "No ID provided"
	ErrClientInvalidIdentifier             = "Invalid patient identifier"
	ErrClientNoPatientFound                = "No patient found"
	ErrClientNoUserFound                   = "User not found"
	ErrClientNoDoctorFound                 = "Doctor not found"
	ErrClientNoMedicalRecordFound          = "Medical record not found"
	ErrClientNoPrescriptionFound           = "Prescription not found"
	ErrClientNoLabResultFound              = "Lab result not found"
	ErrClientFullNameRequired              = "Full name is required"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application"
	ErrClientServerLongRespond             = "The app is taking too long to respond"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevURLParamIDValidation      = "url parameter %s is not a valid id"
	ErrDevFailedToHashPassword      = "failed to hash the given password"
	ErrDevInvalidCredentials        = "credentials do not match any stored user"
	ErrDevMissingCredentials        = "login request with empty name or password"
	ErrDevEmailAlreadyExists        = "email already registered"
	ErrDevServerDeadlineExceeded    = "the server process exceeds the given deadline"
	ErrDevServerProcess             = "server cannot process the request"
	ErrDevAuthGenerateToken         = "failed to generate session token"
	ErrDevAuthSigningMethod         = "unexpected session token signing method"
	ErrDevAuthTokenInvalid          = "session token invalid or expired"
	ErrDevAuthTokenNoSession        = "session token carries no session id"
	ErrDevAuthSessionMissing        = "no session found for the presented token"
	ErrDevAuthSessionAnonymous      = "session carries no user id"
	ErrDevAuthzForbidden            = "caller does not own the targeted patient"
	ErrDevAuthzPatientNotFound      = "targeted patient does not exist"
	ErrDevAuthzInvalidIdentifier    = "patient identifier is empty or malformed"
	ErrDevDBFailedToFindData        = "database failed to find data"
	ErrDevDBFailedToInsertData      = "database failed to insert data"
	ErrDevDBFailedToUpdateData      = "database failed to update data"
	ErrDevDBFailedToDeleteData      = "database failed to delete data"
	ErrDevDBFailedToCountData       = "database failed to count data"
	ErrDevRedisSetData              = "redis failed to set data"
	ErrDevRedisGetData              = "redis failed to get data with key: %s"
	ErrDevRedisDeleteData           = "redis failed to delete data"
	ErrDevRabbitMQPublish           = "rabbitmq failed to publish message to queue: %s"
	ErrDevMinioCreateObject         = "minio failed to create object in bucket: %s"
	ErrDevMinioPresignObject        = "minio failed to presign object in bucket: %s"
	ErrDevCannotParseMultipartForm  = "cannot parse multipart form body"
	ErrDevLabReportMissing          = "lab result has no stored report object"
	ErrDevRoleUnknown               = "role is not a known role"
)
