package timesheet

import (
	"sort"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// FilterByRange keeps only closed sessions whose interval overlaps the
// inclusive range. Open sessions are not billable and never appear in
// reports.
func FilterByRange(sessions []*domain.WorkSession, r domain.DateRange) []*domain.WorkSession {
	var out []*domain.WorkSession
	for _, s := range sessions {
		if s == nil || s.EndTime == nil {
			continue
		}
		if s.EndTime.Before(r.Start) || s.StartTime.After(r.End) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// BuildReport clips every in-range closed session to the range bounds
// and aggregates totals. Sessions are listed ascending by original
// start time. A range touching zero sessions produces an empty report,
// not an error: the caller renders the empty state.
//
// A session spanning several days counts once in SessionCount but its
// effective start contributes one date key to WorkDays.
func BuildReport(sessions []*domain.WorkSession, r domain.DateRange) *domain.Report {
	included := FilterByRange(sessions, r)
	sort.SliceStable(included, func(i, j int) bool {
		return included[i].StartTime.Before(included[j].StartTime)
	})

	rep := &domain.Report{Range: r, SessionCount: len(included)}
	workDays := make(map[string]struct{})

	for _, s := range included {
		effStart := s.StartTime
		if effStart.Before(r.Start) {
			effStart = r.Start
		}
		effEnd := *s.EndTime
		if effEnd.After(r.End) {
			effEnd = r.End
		}
		duration := effEnd.Sub(effStart).Hours()

		rep.TotalHours += duration
		workDays[DateKey(effStart)] = struct{}{}
		rep.Sessions = append(rep.Sessions, domain.ReportSession{
			Session:        s,
			EffectiveStart: effStart,
			EffectiveEnd:   effEnd,
			Duration:       duration,
		})
	}

	rep.WorkDays = len(workDays)
	if rep.WorkDays > 0 {
		rep.AvgHoursPerDay = rep.TotalHours / float64(rep.WorkDays)
	}
	return rep
}
