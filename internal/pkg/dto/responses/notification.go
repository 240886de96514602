package responses

import (
	"time"

	"caremind-service/internal/app/models"
)

type Notification struct {
	ID        string                  `json:"id"`
	Type      string                  `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Read      bool                    `json:"read"`
	Data      models.NotificationData `json:"data,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
}
