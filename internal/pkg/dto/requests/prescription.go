package requests

type CreatePrescription struct {
	PatientIdentifier string `json:"patientFullName" validate:"required"`
	Medication        string `json:"medication" validate:"required,max=255"`
	Dosage            string `json:"dosage" validate:"required,max=100"`
	Instructions      string `json:"instructions,omitempty"`
}

type UpdatePrescription struct {
	Medication   string `json:"medication,omitempty" validate:"omitempty,max=255"`
	Dosage       string `json:"dosage,omitempty" validate:"omitempty,max=100"`
	Instructions string `json:"instructions,omitempty"`
}
