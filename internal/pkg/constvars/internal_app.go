package constvars

type ContextKey string

const (
	CONTEXT_SESSION_KEY    ContextKey = "session"
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	ResourcePatients       = "patients"
	ResourceMedicalRecords = "medical-records"
	ResourcePrescriptions  = "prescriptions"
	ResourceLabResults     = "lab-results"
	ResourceUsers          = "users"
	ResourceDoctors        = "doctors"
)

// Audit decisions, logged and published for every authorization outcome.
const (
	AuditDecisionAllowed   = "allowed"
	AuditDecisionForbidden = "forbidden"
	AuditDecisionNotFound  = "not_found"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// SessionKeyPrefix namespaces session entries in Redis.
const SessionKeyPrefix = "session:"
