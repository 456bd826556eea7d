package cron

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// zapLogger adapts zap to the scheduler's logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l zapLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}

// New builds an empty scheduler logging through log. A panicking job is logged and recovered.
func New(log *zap.Logger) *cron.Cron {
	if log == nil {
		log = zap.NewNop()
	}
	cl := zapLogger{s: log.Named("cron").Sugar()}
	return cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl)))
}

// AddJobs schedules the registered jobs on c, or only the named ones when only is non-empty.
func AddJobs(c *cron.Cron, log *zap.Logger, only ...string) error {
	if log == nil {
		log = zap.NewNop()
	}
	jobs := Jobs()
	names := only
	if len(names) == 0 {
		names = Names()
	}
	for _, name := range names {
		j, ok := jobs[name]
		if !ok {
			return fmt.Errorf("unknown cron job %q", name)
		}
		run := j.Run
		if _, err := c.AddFunc(j.Schedule, func() { run() }); err != nil {
			return fmt.Errorf("register job %s: %w", name, err)
		}
		log.Debug("cron job registered", zap.String("job", name), zap.String("schedule", j.Schedule))
	}
	return nil
}

// NewScheduler builds a scheduler with the registered jobs, or only the named ones.
func NewScheduler(log *zap.Logger, only ...string) (*cron.Cron, error) {
	c := New(log)
	if err := AddJobs(c, log, only...); err != nil {
		return nil, err
	}
	return c, nil
}

// StartCron starts a scheduler running every registered job.
func StartCron(log *zap.Logger) (*cron.Cron, error) {
	c, err := NewScheduler(log)
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
