package responses

import "clinicore-service/internal/app/models"

type MedicalRecord struct {
	MedicalRecord *models.MedicalRecord `json:"medicalRecord"`
}

type MedicalRecords struct {
	MedicalRecords []models.MedicalRecord `json:"medicalRecords"`
}

type UpdatedMedicalRecord struct {
	Updated *models.MedicalRecord `json:"updated"`
}
