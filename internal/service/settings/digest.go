package settings

import (
	"time"

	"github.com/teambition/rrule-go"
)

// parseDigestRule разбирает RRULE ежедневной сводки в часовом поясе компании
// Без DTSTART расписание отсчитывается от полуночи дня now
func parseDigestRule(rule string, now time.Time, loc *time.Location) (*rrule.RRule, error) {
	opts, err := rrule.StrToROptionInLocation(rule, loc)
	if err != nil {
		return nil, err
	}

	if opts.Dtstart.IsZero() {
		local := now.In(loc)
		opts.Dtstart = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	}

	return rrule.NewRRule(*opts)
}

// nextDigestAt ближайшая отправка сводки после now, nil если расписания нет или оно исчерпано
func nextDigestAt(rule *string, now time.Time, loc *time.Location) *time.Time {
	if rule == nil || *rule == "" {
		return nil
	}

	r, err := parseDigestRule(*rule, now, loc)
	if err != nil {
		return nil
	}

	next := r.After(now, false)
	if next.IsZero() {
		return nil
	}
	return &next
}
