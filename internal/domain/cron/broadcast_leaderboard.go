package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/questx-lab/leaderboard/internal/domain/statistic"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
)

type Broadcaster interface {
	Broadcast(msg []byte) int
	Count() int
}

// BroadcastLeaderboardCronJob pushes the current leaderboard to all live
// clients. The leaderboard is computed and serialized once per run, all
// clients receive the same bytes.
type BroadcastLeaderboardCronJob struct {
	leaderboard statistic.Leaderboard
	broadcaster Broadcaster
	interval    time.Duration
}

func NewBroadcastLeaderboardCronJob(
	leaderboard statistic.Leaderboard,
	broadcaster Broadcaster,
	interval time.Duration,
) *BroadcastLeaderboardCronJob {
	return &BroadcastLeaderboardCronJob{
		leaderboard: leaderboard,
		broadcaster: broadcaster,
		interval:    interval,
	}
}

func (job *BroadcastLeaderboardCronJob) Do(ctx context.Context) {
	if job.broadcaster.Count() == 0 {
		xcontext.Logger(ctx).Debugf("No live client, skip broadcasting leaderboard")
		return
	}

	rows, err := job.leaderboard.ComputeLeaderboard(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot compute leaderboard to broadcast: %v", err)
		return
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal leaderboard: %v", err)
		return
	}

	n := job.broadcaster.Broadcast(payload)
	xcontext.Logger(ctx).Debugf("Broadcast leaderboard of %d communities to %d clients", len(rows), n)
}

func (job *BroadcastLeaderboardCronJob) RunNow() bool {
	return false
}

func (job *BroadcastLeaderboardCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
