package logger

import (
	"os"

	"caremind-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewAccessLogger configures the logrus instance used by the HTTP access-log
// middleware. Application logging goes through zap; access logs stay on logrus.
func NewAccessLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	switch internalConfig.App.Env {
	case "production":
		log.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("access.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(file)
		} else {
			log.Info("Failed to log to file, using default stderr")
		}
	default:
		log.SetFormatter(&logrus.TextFormatter{})
	}
	return log
}
