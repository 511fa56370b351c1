package responses

import "clinicore-service/internal/app/models"

type DashboardMetric struct {
	Title string `json:"title"`
	Value int64  `json:"value"`
}

type Dashboard struct {
	Metrics          []DashboardMetric  `json:"metrics"`
	RecentPatients   []models.Patient   `json:"recentPatients"`
	RecentLabResults []models.LabResult `json:"recentLabResults"`
}
