package responses

import "clinicore-service/internal/app/models"

type Prescription struct {
	Prescription *models.Prescription `json:"prescription"`
}

type Prescriptions struct {
	Prescriptions []models.Prescription `json:"prescriptions"`
}

type UpdatedPrescription struct {
	Updated *models.Prescription `json:"updated"`
}
