package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"page-control" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"secret" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec        int    `default:"86400" env:"AUTH_JWT_EXPIRE_SEC"`
		JWTRefreshExpireInSec int    `default:"604800" env:"AUTH_JWT_REFRESH_EXPIRE_SEC"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"proof-images" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		Sender     string `default:"no-reply@page-control.local" env:"SMTP_SENDER"`
	}
	Redis struct {
		Addr     string `default:"127.0.0.1:6379" env:"REDIS_ADDR"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
	Webhook struct {
		ChatURL  string `default:"" env:"CHAT_WEBHOOK_URL"`
		ErrorURL string `default:"" env:"ERROR_WEBHOOK_URL"`
	}
	YandexGPT struct {
		Enabled   *bool  `default:"false" env:"YAGPT_ENABLED"`
		IAMToken  string `default:"" env:"YAGPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YAGPT_CATALOG_ID"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
