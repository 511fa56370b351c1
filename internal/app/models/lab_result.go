package models

import "time"

type LabResult struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	PatientID    uint64    `gorm:"not null;index" json:"patientId"`
	UserID       uint64    `gorm:"not null;index" json:"userId"`
	TestName     string    `gorm:"size:255;not null" json:"testName"`
	Result       string    `gorm:"type:text;not null" json:"result"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
	ReportObject string    `gorm:"size:255" json:"-"`
	PerformedAt  time.Time `json:"performedAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
