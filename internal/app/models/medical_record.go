package models

import "time"

type MedicalRecord struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PatientID uint64    `gorm:"not null;index" json:"patientId"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	Diagnosis string    `gorm:"size:255;not null" json:"diagnosis"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
