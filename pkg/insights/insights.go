// Package insights derives dashboard numbers from a snapshot of a user's
// task list. Every function is deterministic for a given list and "now" and
// never mutates its input.
package insights

import (
	"math"
	"sort"
	"time"

	"github.com/gosimple/slug"

	"taskboard/domain/models"
)

const (
	FocusQueueSize     = 6
	RecentActivitySize = 6
	plannerDays        = 7
)

type CategoryCount struct {
	Key   string // slug ของ label ใช้เป็น stable key ฝั่ง client
	Label string
	Count int
}

type PriorityCount struct {
	High   int
	Medium int
	Low    int
}

type DueCount struct {
	Overdue  int
	Today    int
	Upcoming int
	NoDate   int
}

type DayPlan struct {
	Date  time.Time
	Todos []models.Todo
}

// CompletionRate คืนเปอร์เซ็นต์ที่ปัดเป็นจำนวนเต็ม; list ว่าง = 0
func CompletionRate(todos []models.Todo) int {
	if len(todos) == 0 {
		return 0
	}
	completed := 0
	for _, t := range todos {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(todos))))
}

// CategoryBreakdown นับตาม category เรียงจากมากไปน้อย
// count เท่ากันคงลำดับที่เจอครั้งแรกใน list
func CategoryBreakdown(todos []models.Todo) []CategoryCount {
	index := map[string]int{}
	var counts []CategoryCount

	for _, t := range todos {
		label := t.Category
		if label == "" {
			label = "Uncategorized"
		}
		key := slug.Make(label)
		if key == "" {
			key = "uncategorized"
		}
		if i, ok := index[key]; ok {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, CategoryCount{Key: key, Label: label, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// PriorityBreakdown นับสาม bucket ตายตัว; ไม่มี priority นับเป็น medium
func PriorityBreakdown(todos []models.Todo) PriorityCount {
	var counts PriorityCount
	for _, t := range todos {
		switch t.Priority {
		case models.PriorityHigh:
			counts.High++
		case models.PriorityLow:
			counts.Low++
		default:
			counts.Medium++
		}
	}
	return counts
}

// DueCounts จัด entries เข้า bucket ตาม dueDate เทียบกับ now
func DueCounts(todos []models.Todo, now time.Time) DueCount {
	var counts DueCount
	for _, t := range todos {
		switch classifyDue(t, now) {
		case bucketOverdue:
			counts.Overdue++
		case bucketToday:
			counts.Today++
		case bucketUpcoming:
			counts.Upcoming++
		case bucketNoDate:
			counts.NoDate++
		}
	}
	return counts
}

// FocusQueue คือ short-list ของงานที่ควรทำต่อ: overdue ก่อน แล้ว today
// แล้วที่เหลือตาม rank; ตัดที่ limit (default 6) และไม่มี entry ที่ complete แล้ว
func FocusQueue(todos []models.Todo, now time.Time, limit int) []models.Todo {
	if limit <= 0 {
		limit = FocusQueueSize
	}

	var candidates []models.Todo
	for _, t := range todos {
		if !t.Completed {
			candidates = append(candidates, t)
		}
	}

	var overdue, today []models.Todo
	for _, t := range candidates {
		switch classifyDue(t, now) {
		case bucketOverdue:
			overdue = append(overdue, t)
		case bucketToday:
			today = append(today, t)
		}
	}

	queue := rank(overdue, now)
	queue = append(queue, rank(today, now)...)
	queue = append(queue, rank(candidates, now)...)

	seen := map[int64]bool{}
	result := make([]models.Todo, 0, limit)
	for _, t := range queue {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		result = append(result, t)
		if len(result) == limit {
			break
		}
	}
	return result
}

// WeeklyPlan จัดงานที่ยังไม่เสร็จลง 7 วันถัดไปเริ่มจากวันนี้
func WeeklyPlan(todos []models.Todo, now time.Time) []DayPlan {
	start := startOfDay(now)
	plan := make([]DayPlan, plannerDays)

	for i := range plan {
		dayStart := start.AddDate(0, 0, i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		var due []models.Todo
		for _, t := range todos {
			if t.Completed {
				continue
			}
			at, ok := dueTime(t, now)
			if !ok {
				continue
			}
			if !at.Before(dayStart) && at.Before(dayEnd) {
				due = append(due, t)
			}
		}

		sort.SliceStable(due, func(a, b int) bool {
			ta, _ := dueTime(due[a], now)
			tb, _ := dueTime(due[b], now)
			return ta.Before(tb)
		})

		plan[i] = DayPlan{Date: dayStart, Todos: due}
	}
	return plan
}

// RecentActivity เรียงตาม effective creation time ล่าสุดก่อน ตัดที่ limit
func RecentActivity(todos []models.Todo, limit int) []models.Todo {
	if limit <= 0 {
		limit = RecentActivitySize
	}
	recent := append([]models.Todo(nil), todos...)
	sort.SliceStable(recent, func(i, j int) bool {
		a, b := recent[i].EffectiveCreatedAt(), recent[j].EffectiveCreatedAt()
		if a != b {
			return a > b
		}
		return recent[i].ID > recent[j].ID
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// rank เรียงตาม (due asc, ไม่มี due ไว้ท้าย) แล้ว tie-break ด้วย priority
func rank(todos []models.Todo, now time.Time) []models.Todo {
	ranked := append([]models.Todo(nil), todos...)
	sort.SliceStable(ranked, func(i, j int) bool {
		ti, oki := dueTime(ranked[i], now)
		tj, okj := dueTime(ranked[j], now)
		if oki != okj {
			return oki // มี due มาก่อนไม่มี due
		}
		if oki && okj && !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return priorityRank(ranked[i].Priority) < priorityRank(ranked[j].Priority)
	})
	return ranked
}

func priorityRank(p string) int {
	switch p {
	case models.PriorityHigh:
		return 0
	case models.PriorityLow:
		return 2
	default:
		return 1
	}
}
