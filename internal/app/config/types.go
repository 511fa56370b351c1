package config

type (
	InternalConfig struct {
		App     App
		Session Session
		Hash    Hash
	}

	DriverConfig struct {
		MySQL    MySQL
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                       string
		Port                      string
		Address                   string
		EndpointPrefix            string
		CORSOrigin                string
		ExposeForbidden           bool
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
		LabReportMaxUploadSizeMB  int64
		RabbitMQAuditQueue        string
		AuditPublishPerSecond     int
	}

	MySQL struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Session struct {
		Secret         string
		MaxAgeInMinute int
	}

	Hash struct {
		Salt int
	}
)
