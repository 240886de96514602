package requests

type CreateDischargeRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=1000"`
}

type ReviewDischargeRequest struct {
	Status      string `json:"status" validate:"required,oneof=approved denied"`
	ReviewNotes string `json:"reviewNotes" validate:"omitempty,max=1000"`
}
