package constvars

const (
	ResponseUnknown = "unknown"

	LoginSuccess  = "success"
	LogoutSuccess = "success"

	PatientDeletedSuccess      = "Patient deleted successfully"
	DoctorDeletedSuccess       = "Doctor deleted successfully"
	PrescriptionDeletedSuccess = "Prescription deleted successfully"
)
