package requests

type CreatePatient struct {
	FullName    string `json:"fullName" validate:"required,max=100"`
	DateOfBirth string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Address     string `json:"address,omitempty"`
	Sex         string `json:"sex,omitempty" validate:"omitempty,oneof=MALE FEMALE"`
	BloodGroup  string `json:"bloodGroup,omitempty" validate:"omitempty,max=5"`
}

type UpdatePatient struct {
	FullName    string `json:"fullName,omitempty" validate:"omitempty,max=100"`
	DateOfBirth string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Address     string `json:"address,omitempty"`
	Sex         string `json:"sex,omitempty" validate:"omitempty,oneof=MALE FEMALE"`
	BloodGroup  string `json:"bloodGroup,omitempty" validate:"omitempty,max=5"`
}

// SearchPatients is an exact-field search; empty fields are ignored.
type SearchPatients struct {
	FullName    string `json:"fullName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
}
