package initializers

import (
	"context"
	"time"

	"recruitment-board/config"
	"recruitment-board/db"
	"recruitment-board/fiberlog"
	"recruitment-board/lib/board"
	boardhistoryhandler "recruitment-board/lib/board-history"
	boardsyncworker "recruitment-board/lib/board/sync-worker"
	candidatemail "recruitment-board/lib/candidate-mail"
	candidatestore "recruitment-board/lib/candidate/store"
	"recruitment-board/lib/events"
	xlsexport "recruitment-board/lib/export/xls"
	postingstore "recruitment-board/lib/posting/store"
	"recruitment-board/lib/rbac"
	connectionhub "recruitment-board/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	InitNats()
	connectionhub.Init()
	rbac.NewHandler()
	boardhistoryhandler.NewHandler()
	candidatemail.NewHandler()
	xlsexport.NewHandler()
	board.NewHandler(board.Deps{
		Postings:    postingstore.NewInstance(db.DB),
		Candidates:  candidatestore.NewInstance(db.DB),
		Notifier:    connectionhub.Instance,
		History:     boardhistoryhandler.Instance,
		Events:      events.Instance,
		Mail:        candidatemail.Instance,
		PendingWait: time.Duration(config.Conf.Board.PendingWaitMs) * time.Millisecond,
		Now:         time.Now,
	})
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача синхронизации загруженных досок с хранилищем
	boardsyncworker.StartWorker(ctx, time.Duration(config.Conf.Board.SyncIntervalSec)*time.Second)
}
