package models

// NotificationData routes the recipient's client to the right record.
type NotificationData struct {
	PatientID          string `bson:"patientId,omitempty" json:"patientId,omitempty"`
	DischargeRequestID string `bson:"dischargeRequestId,omitempty" json:"dischargeRequestId,omitempty"`
}

type Notification struct {
	ID          string           `bson:"_id,omitempty"`
	RecipientID string           `bson:"recipientId"`
	Type        string           `bson:"type"`
	Title       string           `bson:"title"`
	Message     string           `bson:"message"`
	Read        bool             `bson:"read"`
	Data        NotificationData `bson:"data,omitempty"`
	TimeModel   `bson:",inline"`
}
