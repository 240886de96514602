package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	RabbitMQ AppRabbitMQ
	Mailer   AppMailer
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	LoginSessionExpiredTimeInHours int
	ReviewLockExpiredTimeInSeconds int
	PendingReminderCronSpec        string
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppRabbitMQ struct {
	MailerQueue string
}

type AppMailer struct {
	EmailSender string
}
