package requests

// CreateMedicalRecord references the patient by a human-entered identifier:
// either a numeric id or the exact stored full name.
type CreateMedicalRecord struct {
	PatientIdentifier string `json:"patientFullName" validate:"required"`
	Diagnosis         string `json:"diagnosis" validate:"required,max=255"`
	Notes             string `json:"notes,omitempty"`
}

type UpdateMedicalRecord struct {
	Diagnosis string `json:"diagnosis,omitempty" validate:"omitempty,max=255"`
	Notes     string `json:"notes,omitempty"`
}
