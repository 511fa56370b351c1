package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64         `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      Role           `gorm:"type:enum('ADMIN','DOCTOR');not null" json:"role"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Patients       []Patient       `gorm:"foreignKey:UserID" json:"patients,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:UserID" json:"medicalRecords,omitempty"`
	Prescriptions  []Prescription  `gorm:"foreignKey:UserID" json:"prescriptions,omitempty"`
	LabResults     []LabResult     `gorm:"foreignKey:UserID" json:"labResults,omitempty"`
}
