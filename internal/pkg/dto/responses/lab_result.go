package responses

import "clinicore-service/internal/app/models"

type LabResult struct {
	LabResult *models.LabResult `json:"labResult"`
}

type LabResults struct {
	LabResults []models.LabResult `json:"labResults"`
}

type UpdatedLabResult struct {
	Updated *models.LabResult `json:"updated"`
}

type LabReportURL struct {
	URL string `json:"url"`
}
