package requests

type CreateLabResult struct {
	PatientIdentifier string `json:"patientFullName" validate:"required"`
	TestName          string `json:"testName" validate:"required,max=255"`
	Result            string `json:"result" validate:"required"`
	Notes             string `json:"notes,omitempty"`
	PerformedAt       string `json:"performedAt,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type UpdateLabResult struct {
	TestName    string `json:"testName,omitempty" validate:"omitempty,max=255"`
	Result      string `json:"result,omitempty"`
	Notes       string `json:"notes,omitempty"`
	PerformedAt string `json:"performedAt,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
