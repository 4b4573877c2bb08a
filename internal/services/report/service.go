package report

import (
	"context"
	"time"

	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/storage"
)

// DailyReport summarizes play activity for one calendar day
type DailyReport struct {
	Date        string
	PlayerCount int
	WonCount    int
}

// DayStat is one day's activity for a single account
type DayStat struct {
	Date           string
	SessionsPlayed int
	SessionsWon    int
}

// AccountReport is per-day activity for one account over a date range
type AccountReport struct {
	AccountID model.AccountID
	From      string
	To        string
	Stats     []DayStat
}

// Service produces admin reports from stored sessions
type Service struct {
	storage storage.Storage
}

// New creates a new report service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Daily reports distinct players and won sessions for the UTC calendar
// day containing date.
func (s *Service) Daily(ctx context.Context, date time.Time) (*DailyReport, error) {
	from, to := dayBounds(date)

	sessions, err := s.storage.ListSessionsStartedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	players := make(map[model.AccountID]struct{})
	won := 0
	for _, session := range sessions {
		players[session.AccountID] = struct{}{}
		if session.Status == model.StatusWon {
			won++
		}
	}

	return &DailyReport{
		Date:        from.Format(model.QuotaDayLayout),
		PlayerCount: len(players),
		WonCount:    won,
	}, nil
}

// ForAccount reports per-day sessions played and won for one account
// across an inclusive date range.
func (s *Service) ForAccount(ctx context.Context, accountID model.AccountID, from, to time.Time) (*AccountReport, error) {
	sessions, err := s.storage.ListSessionsForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	fromDay, _ := dayBounds(from)
	_, toEnd := dayBounds(to)

	byDay := make(map[string]*DayStat)
	for _, session := range sessions {
		if session.StartedAt.Before(fromDay) || session.StartedAt.After(toEnd) {
			continue
		}
		day := session.StartedAt.UTC().Format(model.QuotaDayLayout)
		stat, ok := byDay[day]
		if !ok {
			stat = &DayStat{Date: day}
			byDay[day] = stat
		}
		stat.SessionsPlayed++
		if session.Status == model.StatusWon {
			stat.SessionsWon++
		}
	}

	report := &AccountReport{
		AccountID: accountID,
		From:      fromDay.Format(model.QuotaDayLayout),
		To:        toEnd.Format(model.QuotaDayLayout),
	}
	for day := fromDay; !day.After(toEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format(model.QuotaDayLayout)
		if stat, ok := byDay[key]; ok {
			report.Stats = append(report.Stats, *stat)
		} else {
			report.Stats = append(report.Stats, DayStat{Date: key})
		}
	}

	return report, nil
}

// dayBounds returns the inclusive UTC bounds of the calendar day
// containing t
func dayBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
