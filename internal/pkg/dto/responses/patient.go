package responses

import "clinicore-service/internal/app/models"

type NewPatient struct {
	Patient *models.Patient `json:"patient"`
}

type Patient struct {
	Patient *models.Patient `json:"patient"`
}

type Patients struct {
	Patients []models.Patient `json:"patients"`
}

type UpdatedPatient struct {
	Updated *models.Patient `json:"updated"`
}
