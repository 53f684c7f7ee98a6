package initializers

import (
	"context"

	"page-control-backend/config"
	"page-control-backend/fiberlog"
	absencehandler "page-control-backend/lib/absence"
	authhandler "page-control-backend/lib/auth"
	exporthandler "page-control-backend/lib/export"
	xlsexport "page-control-backend/lib/export/xls"
	filestorage "page-control-backend/lib/file-storage"
	holidayhandler "page-control-backend/lib/holiday"
	hourbankhandler "page-control-backend/lib/hour-bank"
	reconcileworker "page-control-backend/lib/hour-bank/reconcile-worker"
	"page-control-backend/lib/notification"
	overtimehandler "page-control-backend/lib/overtime"
	proofanalysis "page-control-backend/lib/proof-analysis"
	timerequesthandler "page-control-backend/lib/time-request"
	usershandler "page-control-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	InitStatsCache()
	filestorage.NewHandler()
	notification.NewHandler(config.Conf.Webhook.ChatURL)
	proofanalysis.NewHandler(!*config.Conf.YandexGPT.Enabled)
	xlsexport.NewHandler()
	authhandler.NewHandler()
	usershandler.NewHandler()
	holidayhandler.NewHandler()
	overtimehandler.NewHandler()
	hourbankhandler.NewHandler()
	timerequesthandler.NewHandler()
	absencehandler.NewHandler()
	exporthandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Repairs approved compensations whose bank record write was lost.
	reconcileworker.StartWorker(ctx)
}
