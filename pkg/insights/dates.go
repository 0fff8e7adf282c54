package insights

import (
	"time"

	"taskboard/domain/models"
)

type dueBucket int

const (
	bucketNone dueBucket = iota
	bucketOverdue
	bucketToday
	bucketUpcoming
	bucketNoDate
)

// layouts ที่รับจาก client; date-only parse ใน location ของ now
// เพื่อให้ขอบวันตรงกับ bucket boundary
var dueLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDueDate แปลง due-date string; ok=false ถ้า parse ไม่ได้
func ParseDueDate(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dueLayouts {
		if at, err := time.ParseInLocation(layout, value, loc); err == nil {
			return at, true
		}
	}
	return time.Time{}, false
}

func dueTime(t models.Todo, now time.Time) (time.Time, bool) {
	if t.DueDate == nil {
		return time.Time{}, false
	}
	return ParseDueDate(*t.DueDate, now.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// classifyDue: overdue เฉพาะงานที่ยังไม่เสร็จ, today ไม่สน completed,
// parse ไม่ได้หรือไม่มี due = no-date
func classifyDue(t models.Todo, now time.Time) dueBucket {
	at, ok := dueTime(t, now)
	if !ok {
		return bucketNoDate
	}

	dayStart := startOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	switch {
	case at.Before(dayStart):
		if t.Completed {
			return bucketNone
		}
		return bucketOverdue
	case at.Before(dayEnd):
		return bucketToday
	case at.Before(dayStart.AddDate(0, 0, plannerDays+1)):
		return bucketUpcoming
	default:
		return bucketNone
	}
}
