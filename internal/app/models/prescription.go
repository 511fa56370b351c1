package models

import "time"

type Prescription struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	PatientID    uint64    `gorm:"not null;index" json:"patientId"`
	UserID       uint64    `gorm:"not null;index" json:"userId"`
	Medication   string    `gorm:"size:255;not null" json:"medication"`
	Dosage       string    `gorm:"size:100;not null" json:"dosage"`
	Instructions string    `gorm:"type:text" json:"instructions,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
