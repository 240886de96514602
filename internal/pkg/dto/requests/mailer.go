package requests

// MailJob is the payload enqueued to RabbitMQ by the fan-out service and
// consumed by the mailer worker.
type MailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
