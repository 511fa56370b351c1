package config

import (
	"clinicore-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MySQL: MySQL{
			Host:     utils.GetEnvString("MYSQL_HOST", "localhost"),
			Port:     utils.GetEnvString("MYSQL_PORT", "3306"),
			DbName:   utils.GetEnvString("MYSQL_DB_NAME", "clinicore"),
			Username: utils.GetEnvString("MYSQL_USERNAME", "root"),
			Password: utils.GetEnvString("MYSQL_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "lab-reports"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":3000"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			CORSOrigin:                utils.GetEnvString("APP_CORS_ORIGIN", "http://localhost:5173"),
			ExposeForbidden:           utils.GetEnvBool("APP_EXPOSE_FORBIDDEN", false),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			LabReportMaxUploadSizeMB:  utils.GetEnvInt64("APP_LAB_REPORT_UPLOAD_MAX_SIZE_IN_MB", 10),
			RabbitMQAuditQueue:        utils.GetEnvString("APP_RABBITMQ_AUDIT_QUEUE", "clinicore.audit"),
			AuditPublishPerSecond:     utils.GetEnvInt("APP_AUDIT_PUBLISH_PER_SECOND", 50),
		},
		Session: Session{
			Secret:         utils.GetEnvString("SESSION_SECRET", "your-secret-key"),
			MaxAgeInMinute: utils.GetEnvInt("SESSION_MAX_AGE_IN_MINUTE", 60),
		},
		Hash: Hash{
			Salt: utils.GetEnvInt("SALT", 10),
		},
	}
}
