package boardsyncworker

import (
	"context"
	"time"

	"recruitment-board/lib/board"
	baseworker "recruitment-board/lib/utils/base-worker"
	"recruitment-board/lib/utils/helpers"
)

// StartWorker периодически подтягивает изменения, сделанные в обход доски
func StartWorker(ctx context.Context, interval time.Duration) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("BoardSyncWorker", interval, interval),
		boards:   board.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	boards board.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	for _, b := range i.boards.Loaded() {
		if helpers.IsContextDone(ctx) {
			return
		}
		if err := b.SyncIdle(ctx); err != nil {
			logger.
				WithError(err).
				WithField("space_id", b.SpaceID()).
				Error("ошибка синхронизации доски")
		}
	}
}
