package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/export"
	"github.com/teletrack/teletrack-cli/internal/timesheet"
)

type reportService struct {
	sessions SessionService
}

func NewReportService(sessions SessionService) ReportService {
	return &reportService{sessions: sessions}
}

func (s *reportService) BuildWeekly(ctx context.Context, now time.Time) (*domain.Report, error) {
	return s.build(ctx, timesheet.WeekRange(now))
}

func (s *reportService) BuildMonthly(ctx context.Context, now time.Time) (*domain.Report, error) {
	return s.build(ctx, timesheet.MonthRange(now))
}

func (s *reportService) BuildCustom(ctx context.Context, start, end time.Time) (*domain.Report, error) {
	r, err := timesheet.CustomRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.build(ctx, r)
}

func (s *reportService) Export(report *domain.Report, format, path string) (string, error) {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = fmt.Sprintf("TeleTrack_Report_%s_%s.%s",
			timesheet.DateKey(report.Range.Start),
			timesheet.DateKey(report.Range.End),
			exporter.Extension())
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := exporter.Export(report, f); err != nil {
		return "", err
	}
	return path, nil
}

func (s *reportService) build(ctx context.Context, r domain.DateRange) (*domain.Report, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	return timesheet.BuildReport(sessions, r), nil
}
