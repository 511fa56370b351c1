package authorization

import (
	"context"

	"clinicore-service/internal/app/models"
)

// Scope narrows every clinical query to the records a caller may see.
// Unrestricted scopes skip the owner filter entirely.
type Scope struct {
	Unrestricted bool
	UserID       uint64
}

type OwnershipService interface {
	// ScopeFor derives the query scope from the caller's role. Unknown roles
	// are rejected rather than silently narrowed.
	ScopeFor(session *models.Session) (Scope, error)
	// AuthorizePatientAccess loads the patient and verifies the caller may
	// touch it. Denials are audited with the true category before any
	// external collapsing.
	AuthorizePatientAccess(ctx context.Context, session *models.Session, patientID uint64) (*models.Patient, error)
	// ResolvePatientByIdentifier accepts either a numeric patient id or an
	// exact full name and returns the patient the caller may access.
	ResolvePatientByIdentifier(ctx context.Context, session *models.Session, identifier string) (*models.Patient, error)
}

type PatientLookupRepository interface {
	FindPatientByID(ctx context.Context, patientID uint64) (*models.Patient, error)
	FindPatientsByFullName(ctx context.Context, fullName string) ([]models.Patient, error)
}
