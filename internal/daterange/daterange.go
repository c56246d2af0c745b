// Package daterange превращает именованный период ("Today", "This week", ...)
// в инклюзивный интервал и фильтрует записи по нему.
//
// Календарные вычисления выполняются в часовом поясе now.
package daterange

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// Resolver вычисляет интервалы с заданным первым днем недели
type Resolver struct {
	WeekStart time.Weekday
}

// NewResolver создает resolver с первым днем недели weekStart
func NewResolver(weekStart time.Weekday) Resolver {
	return Resolver{WeekStart: weekStart}
}

// defaultResolver неделя начинается с воскресенья
var defaultResolver = Resolver{WeekStart: time.Sunday}

// ResolveRange вычисляет интервал для токена, неделя начинается с воскресенья
func ResolveRange(token domain.FilterToken, now time.Time, custom *domain.DateRange) domain.DateRange {
	return defaultResolver.Resolve(token, now, custom)
}

// Resolve вычисляет инклюзивный интервал для токена относительно now
//
// Для Custom без переданного интервала возвращается вырожденный интервал
// нулевой длины в полночь now. Неизвестный токен дает интервал "Today".
func (r Resolver) Resolve(token domain.FilterToken, now time.Time, custom *domain.DateRange) domain.DateRange {
	today := startOfDay(now)

	switch token {
	case domain.TokenToday:
		return days(today, 1)

	case domain.TokenYesterday:
		return days(today.AddDate(0, 0, -1), 1)

	case domain.TokenTomorrow:
		return days(today.AddDate(0, 0, 1), 1)

	case domain.TokenThisWeek:
		return days(r.weekStart(today), 7)

	case domain.TokenLastWeek:
		return days(r.weekStart(today).AddDate(0, 0, -7), 7)

	case domain.TokenThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return domain.DateRange{Start: first, End: endBefore(first.AddDate(0, 1, 0))}

	case domain.TokenThisYear:
		first := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return domain.DateRange{Start: first, End: endBefore(first.AddDate(1, 0, 0))}

	case domain.TokenCustom:
		if custom == nil {
			return domain.DateRange{Start: today, End: today}
		}
		return *custom

	default:
		return days(today, 1)
	}
}

// weekStart возвращает полночь первого дня недели, содержащей day
func (r Resolver) weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) - int(r.WeekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// FilterByRange оставляет записи, у которых Start <= Timestamp() <= End
// Порядок сохраняется, входной срез не изменяется
func FilterByRange(records []*domain.Appointment, r domain.DateRange) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if r.Contains(rec.Timestamp()) {
			result = append(result, rec)
		}
	}
	return result
}

// ParseToken принимает отображаемое название ("This week") или slug ("this_week")
// Неизвестная строка возвращается как есть и при вычислении дает "Today"
func ParseToken(s string) domain.FilterToken {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)

	for _, token := range domain.FilterTokens {
		if strings.ToLower(string(token)) == normalized {
			return token
		}
	}

	return domain.FilterToken(s)
}

// ParseWeekday разбирает название дня недели ("sunday", "Mon")
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return time.Sunday, false
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if strings.HasPrefix(name, s) {
			return d, true
		}
	}
	return time.Sunday, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// days интервал из n календарных дней, начиная с полуночи start
func days(start time.Time, n int) domain.DateRange {
	return domain.DateRange{Start: start, End: endBefore(start.AddDate(0, 0, n))}
}

// endBefore последняя миллисекунда перед next
func endBefore(next time.Time) time.Time {
	return next.Add(-time.Millisecond)
}
