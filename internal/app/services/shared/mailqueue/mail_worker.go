package mailqueue

import (
	"context"

	"caremind-service/internal/app/contracts"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker consumes mail jobs and sends them over SMTP. A failed send is nacked
// back to the queue once; a job that fails decode is dropped with a log line
// since redelivery cannot fix it.
type Worker struct {
	conn      *amqp.Connection
	smtp      contracts.SMTPService
	log       *zap.Logger
	queueName string
	cancel    context.CancelFunc
}

func NewWorker(conn *amqp.Connection, smtp contracts.SMTPService, log *zap.Logger, queueName string) *Worker {
	return &Worker{
		conn:      conn,
		smtp:      smtp,
		log:       log,
		queueName: queueName,
	}
}

func (w *Worker) Start() error {
	ch, err := w.conn.Channel()
	if err != nil {
		return err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return err
	}

	deliveries, err := ch.Consume(
		w.queueName, // queue
		"",          // consumer
		false,       // autoAck
		false,       // exclusive
		false,       // noLocal
		false,       // noWait
		nil,         // args
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go w.consume(ctx, deliveries)
	return nil
}

func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Worker) consume(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			w.handle(delivery)
		}
	}
}

func (w *Worker) handle(delivery amqp.Delivery) {
	var job requests.MailJob
	if err := json.Unmarshal(delivery.Body, &job); err != nil {
		w.log.Error("mailWorker failed to decode mail job, dropping",
			zap.String(constvars.LoggingQueueKey, w.queueName),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	if err := w.smtp.SendEmail(job.To, job.Subject, job.Body); err != nil {
		w.log.Error("mailWorker failed to send email",
			zap.String(constvars.LoggingQueueKey, w.queueName),
			zap.Error(err),
		)
		delivery.Nack(false, !delivery.Redelivered)
		return
	}

	delivery.Ack(false)
}
