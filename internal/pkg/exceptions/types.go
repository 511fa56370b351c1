package exceptions

import (
	"fmt"

	"clinicore-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingRequiredFields, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingRequiredFields, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientNoIDProvided, fmt.Sprintf(constvars.ErrDevURLParamIDValidation, paramName))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}

	// Auth
	ErrMissingCredentials = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientMissingCredentials, constvars.ErrDevMissingCredentials)
	}
	ErrInvalidCredentials = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientInvalidCredentials, constvars.ErrDevInvalidCredentials)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrEmailAlreadyExist = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrUnauthorized = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, devMessage)
	}
	ErrLogout = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCouldNotLogOut, constvars.ErrDevRedisDeleteData)
	}

	// Authorization and ownership. Forbidden and not-found are distinct here
	// so audit logs keep the true category; the HTTP mapping may collapse them.
	ErrAuthzForbidden = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientForbidden, constvars.ErrDevAuthzForbidden)
	}
	ErrAuthzPatientNotFound = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientNoPatientFound, constvars.ErrDevAuthzPatientNotFound)
	}
	ErrInvalidIdentifier = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidIdentifier, constvars.ErrDevAuthzInvalidIdentifier)
	}
	ErrRoleUnknown = func(role string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientForbidden, fmt.Sprintf("%s: %q", constvars.ErrDevRoleUnknown, role))
	}

	// Entity lookups
	ErrUserNotFound = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientNoUserFound, constvars.ErrDevDBFailedToFindData)
	}
	ErrDoctorNotFound = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientNoDoctorFound, constvars.ErrDevDBFailedToFindData)
	}
	ErrMedicalRecordNotFound = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientNoMedicalRecordFound, constvars.ErrDevDBFailedToFindData)
	}
	ErrPrescriptionNotFound = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientNoPrescriptionFound, constvars.ErrDevDBFailedToFindData)
	}
	ErrLabResultNotFound = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientNoLabResultFound, constvars.ErrDevDBFailedToFindData)
	}

	// MySQL
	ErrMySQLDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindData)
	}
	ErrMySQLDBInsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertData)
	}
	ErrMySQLDBUpdateData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateData)
	}
	ErrMySQLDBDeleteData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteData)
	}
	ErrMySQLDBCountData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCountData)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetData, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}
	ErrMinioFindObjectPresignedURL = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPresignObject, bucketName))
	}
	ErrLabReportMissing = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientNoLabResultFound, constvars.ErrDevLabReportMissing)
	}
)
