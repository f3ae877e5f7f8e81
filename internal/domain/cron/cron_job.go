package cron

import (
	"context"
	"sync"
	"time"

	"github.com/questx-lab/leaderboard/pkg/xcontext"
)

type CronJob interface {
	Do(context.Context)
	RunNow() bool
	Next() time.Time
}

// CronJobManager runs every registered job repeatedly. The next run of a job
// is only scheduled after the current run finishes, so runs of the same job
// never overlap.
type CronJobManager struct {
	mutex sync.Mutex
	wait  sync.WaitGroup
	jobs  map[CronJob]*time.Timer
}

func NewCronJobManager() *CronJobManager {
	return &CronJobManager{jobs: make(map[CronJob]*time.Timer)}
}

// Start runs jobs and blocks until ctx is done, then waits for running jobs to
// finish.
func (m *CronJobManager) Start(ctx context.Context, jobs ...CronJob) {
	xcontext.Logger(ctx).Infof("Cron job manager started")

	m.mutex.Lock()
	for _, job := range jobs {
		m.jobs[job] = nil
	}

	for job := range m.jobs {
		if job.RunNow() {
			m.wait.Add(1)
			go m.run(ctx, job)
		} else {
			m.scheduleLocked(ctx, job)
		}
	}
	m.mutex.Unlock()

	<-ctx.Done()
	m.cancel()

	m.wait.Wait()
	xcontext.Logger(ctx).Infof("Cron job manager stopped")
}

func (m *CronJobManager) cancel() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, timer := range m.jobs {
		if timer != nil && timer.Stop() {
			m.wait.Done()
		}
	}

	// Clear all jobs to not schedule them again.
	m.jobs = make(map[CronJob]*time.Timer)
}

func (m *CronJobManager) run(ctx context.Context, job CronJob) {
	defer m.wait.Done()

	xcontext.Logger(ctx).Debugf("%T is running...", job)
	job.Do(ctx)
	xcontext.Logger(ctx).Debugf("%T ok", job)

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.scheduleLocked(ctx, job)
}

func (m *CronJobManager) scheduleLocked(ctx context.Context, job CronJob) {
	// Only schedule jobs which existed in job list.
	if _, ok := m.jobs[job]; ok {
		m.wait.Add(1)
		m.jobs[job] = time.AfterFunc(time.Until(job.Next()), func() { m.run(ctx, job) })
	}
}
