package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"inspire-tracker/internal/logger"
)

// SchedulerService wraps cron-based jobs.
type SchedulerService struct {
	cron *cron.Cron
	log  *logger.Logger
}

func NewSchedulerService(loc *time.Location, log *logger.Logger) *SchedulerService {
	return &SchedulerService{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		log:  log,
	}
}

// ScheduleReports registers the report job: every interval when one is set,
// otherwise once a day at the HH:MM reportTime.
func (s *SchedulerService) ScheduleReports(reportTime string, interval time.Duration, job func()) (cron.EntryID, error) {
	var (
		spec string
		err  error
	)
	if interval > 0 {
		spec, err = buildIntervalSpec(interval)
	} else {
		spec, err = buildDailySpec(reportTime)
	}
	if err != nil {
		return 0, err
	}
	s.log.Info("report job scheduled", "spec", spec)
	return s.cron.AddFunc(spec, job)
}

// Next reports when the given entry fires next.
func (s *SchedulerService) Next(id cron.EntryID) time.Time {
	return s.cron.Entry(id).Next
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func buildIntervalSpec(interval time.Duration) (string, error) {
	if interval <= 0 {
		return "", fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	return fmt.Sprintf("@every %ds", seconds), nil
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(strings.TrimSpace(timeStr), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
