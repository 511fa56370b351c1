package models

import "time"

// Patient carries the ownership anchor: UserID points at the clinician who
// created the patient and scopes every derived record transitively.
type Patient struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	FullName    string     `gorm:"size:100;not null;index" json:"fullName"`
	DateOfBirth *time.Time `gorm:"type:date" json:"dateOfBirth,omitempty"`
	Phone       string     `gorm:"size:20" json:"phone,omitempty"`
	Email       string     `gorm:"size:100" json:"email,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	Sex         string     `gorm:"size:10" json:"sex,omitempty"`
	BloodGroup  string     `gorm:"size:5" json:"bloodGroup,omitempty"`
	UserID      uint64     `gorm:"not null;index" json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`

	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID" json:"medicalRecords,omitempty"`
	Prescriptions  []Prescription  `gorm:"foreignKey:PatientID" json:"prescriptions,omitempty"`
	LabResults     []LabResult     `gorm:"foreignKey:PatientID" json:"labResults,omitempty"`
}
