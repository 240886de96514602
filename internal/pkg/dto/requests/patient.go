package requests

type CreatePatient struct {
	FullName          string `json:"fullName" validate:"required,min=2,max=120"`
	Email             string `json:"email" validate:"omitempty,email"`
	PhoneNumber       string `json:"phoneNumber" validate:"omitempty,max=20"`
	BirthDate         string `json:"birthDate" validate:"omitempty"`
	Address           string `json:"address" validate:"omitempty,max=200"`
	AssignedTherapist string `json:"assignedTherapistId" validate:"omitempty"`
}

type UpdatePatient struct {
	FullName          string `json:"fullName" validate:"required,min=2,max=120"`
	Email             string `json:"email" validate:"omitempty,email"`
	PhoneNumber       string `json:"phoneNumber" validate:"omitempty,max=20"`
	BirthDate         string `json:"birthDate" validate:"omitempty"`
	Address           string `json:"address" validate:"omitempty,max=200"`
	AssignedTherapist string `json:"assignedTherapistId" validate:"omitempty"`
}
