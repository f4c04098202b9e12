// Package schedule holds the pure due-date logic: the recurring
// anniversary deadline and the bucketing of obligations into summary
// counts. Nothing here touches the database or the clock; callers pass
// "today" in.
package schedule

import (
	"time"

	"github.com/complytrack/complytrack/internal/model"
)

// UpcomingWindowDays is the inclusive horizon for the "upcoming" bucket.
const UpcomingWindowDays = 30

// AnniversaryDueDate returns the last calendar day of the given month in
// the given year. State filings that track the LLC's anniversary month
// (annual list, business license renewal) are due on this date. Month-end
// is leap-year correct: day zero of the following month normalizes back.
func AnniversaryDueDate(month, year int) time.Time {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
}

// Buckets partitions obligations for the dashboard summary.
//
// Completed and Pending reflect the stored status verbatim. Overdue and
// Upcoming are computed from the due date at classification time and
// deliberately ignore whatever "overdue" value may or may not have been
// persisted: a pending item whose date has passed is Overdue here even if
// nobody ever wrote status=overdue, and vice versa. The two notions can
// disagree; that is intended.
type Buckets struct {
	Completed []*model.Obligation
	Pending   []*model.Obligation
	Overdue   []*model.Obligation
	Upcoming  []*model.Obligation
}

// Bucketize classifies obligations relative to today at day granularity.
// An item due exactly today is Upcoming, not Overdue; an item due exactly
// 30 days out is still Upcoming (both boundaries inclusive). Completed
// items never land in Overdue or Upcoming regardless of date.
func Bucketize(items []*model.Obligation, today time.Time) Buckets {
	var b Buckets

	day := dateOnly(today)
	horizon := day.AddDate(0, 0, UpcomingWindowDays)

	for _, item := range items {
		switch item.Status {
		case model.StatusCompleted:
			b.Completed = append(b.Completed, item)
			continue
		case model.StatusPending:
			b.Pending = append(b.Pending, item)
		default:
			// stored "overdue" (or anything unknown) stays out of the
			// computed buckets; it is neither pending nor completed
			continue
		}

		due := dateOnly(item.DueDate)
		if due.Before(day) {
			b.Overdue = append(b.Overdue, item)
		} else if !due.After(horizon) {
			b.Upcoming = append(b.Upcoming, item)
		}
	}

	return b
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
