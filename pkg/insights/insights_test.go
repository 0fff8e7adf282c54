package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/models"
)

// fixed "now": Tuesday 2026-03-10 12:00 UTC
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func due(s string) *string {
	return &s
}

func todo(id int64, task string, opts ...func(*models.Todo)) models.Todo {
	t := models.Todo{
		ID:        id,
		Task:      task,
		Priority:  models.PriorityMedium,
		CreatedAt: id,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func withDue(s string) func(*models.Todo) {
	return func(t *models.Todo) { t.DueDate = due(s) }
}

func withPriority(p string) func(*models.Todo) {
	return func(t *models.Todo) { t.Priority = p }
}

func withCategory(c string) func(*models.Todo) {
	return func(t *models.Todo) { t.Category = c }
}

func completed() func(*models.Todo) {
	return func(t *models.Todo) { t.Completed = true }
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(nil))
	assert.Equal(t, 0, CompletionRate([]models.Todo{}))

	all := []models.Todo{
		todo(1, "a", completed()),
		todo(2, "b", completed()),
	}
	assert.Equal(t, 100, CompletionRate(all))

	third := []models.Todo{
		todo(1, "a", completed()),
		todo(2, "b"),
		todo(3, "c"),
	}
	assert.Equal(t, 33, CompletionRate(third))

	twoThirds := []models.Todo{
		todo(1, "a", completed()),
		todo(2, "b", completed()),
		todo(3, "c"),
	}
	assert.Equal(t, 67, CompletionRate(twoThirds))
}

func TestCategoryBreakdown(t *testing.T) {
	todos := []models.Todo{
		todo(1, "a", withCategory("Work")),
		todo(2, "b", withCategory("Home")),
		todo(3, "c", withCategory("Work")),
		todo(4, "d"),
		todo(5, "e", withCategory("Side Project")),
	}

	counts := CategoryBreakdown(todos)
	require.Len(t, counts, 4)

	assert.Equal(t, CategoryCount{Key: "work", Label: "Work", Count: 2}, counts[0])
	// count เท่ากันคงลำดับที่เจอครั้งแรก
	assert.Equal(t, "Home", counts[1].Label)
	assert.Equal(t, "Uncategorized", counts[2].Label)
	assert.Equal(t, "uncategorized", counts[2].Key)
	assert.Equal(t, "side-project", counts[3].Key)
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	assert.Empty(t, CategoryBreakdown(nil))
}

func TestPriorityBreakdown(t *testing.T) {
	todos := []models.Todo{
		todo(1, "a", withPriority(models.PriorityHigh)),
		todo(2, "b", withPriority(models.PriorityLow)),
		todo(3, "c"),
		todo(4, "d", withPriority("")), // legacy record ไม่มี priority
	}

	counts := PriorityBreakdown(todos)
	assert.Equal(t, 1, counts.High)
	assert.Equal(t, 2, counts.Medium)
	assert.Equal(t, 1, counts.Low)
}

func TestDueCounts(t *testing.T) {
	todos := []models.Todo{
		todo(1, "overdue", withDue("2026-03-09")),
		todo(2, "done yesterday", withDue("2026-03-09"), completed()), // ไม่นับ overdue
		todo(3, "today", withDue("2026-03-10")),
		todo(4, "upcoming", withDue("2026-03-13")),
		todo(5, "far future", withDue("2026-04-20")), // นอก window ไม่นับ
		todo(6, "no date"),
		todo(7, "garbage", withDue("soon")),
	}

	counts := DueCounts(todos, testNow)
	assert.Equal(t, 1, counts.Overdue)
	assert.Equal(t, 1, counts.Today)
	assert.Equal(t, 1, counts.Upcoming)
	assert.Equal(t, 2, counts.NoDate)
}

func TestParseDueDate(t *testing.T) {
	cases := []string{
		"2026-03-10",
		"2026-03-10T15:04",
		"2026-03-10 15:04",
		"2026-03-10T15:04:05Z",
	}
	for _, c := range cases {
		_, ok := ParseDueDate(c, time.UTC)
		assert.True(t, ok, c)
	}

	_, ok := ParseDueDate("", time.UTC)
	assert.False(t, ok)
	_, ok = ParseDueDate("next tuesday", time.UTC)
	assert.False(t, ok)
}

func TestFocusQueueOrdering(t *testing.T) {
	a := todo(1, "A", withDue("2026-03-09"), withPriority(models.PriorityLow))
	b := todo(2, "B", withDue("2026-03-10"), withPriority(models.PriorityHigh))
	c := todo(3, "C", withPriority(models.PriorityHigh))

	queue := FocusQueue([]models.Todo{c, b, a}, testNow, 0)
	require.Len(t, queue, 3)

	// overdue มาก่อน today ก่อนที่เหลือ แม้ priority จะต่ำกว่า
	assert.Equal(t, "A", queue[0].Task)
	assert.Equal(t, "B", queue[1].Task)
	assert.Equal(t, "C", queue[2].Task)
}

func TestFocusQueueExcludesCompleted(t *testing.T) {
	todos := []models.Todo{
		todo(1, "done", withDue("2026-03-09"), completed()),
		todo(2, "open"),
	}

	queue := FocusQueue(todos, testNow, 0)
	require.Len(t, queue, 1)
	assert.Equal(t, "open", queue[0].Task)
}

func TestFocusQueueLimit(t *testing.T) {
	var todos []models.Todo
	for i := int64(1); i <= 10; i++ {
		todos = append(todos, todo(i, "t"))
	}

	assert.Len(t, FocusQueue(todos, testNow, 0), FocusQueueSize)
	assert.Len(t, FocusQueue(todos, testNow, 3), 3)
}

func TestFocusQueueNoDuplicates(t *testing.T) {
	todos := []models.Todo{
		todo(1, "overdue", withDue("2026-03-01")),
		todo(2, "today", withDue("2026-03-10")),
	}

	queue := FocusQueue(todos, testNow, 0)
	require.Len(t, queue, 2)

	seen := map[int64]bool{}
	for _, q := range queue {
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestWeeklyPlan(t *testing.T) {
	todos := []models.Todo{
		todo(1, "today", withDue("2026-03-10")),
		todo(2, "wednesday", withDue("2026-03-11")),
		todo(3, "done", withDue("2026-03-11"), completed()), // เสร็จแล้วไม่เข้า plan
		todo(4, "no date"),
		todo(5, "next month", withDue("2026-04-15")),
	}

	plan := WeeklyPlan(todos, testNow)
	require.Len(t, plan, 7)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), plan[0].Date)
	require.Len(t, plan[0].Todos, 1)
	assert.Equal(t, "today", plan[0].Todos[0].Task)

	require.Len(t, plan[1].Todos, 1)
	assert.Equal(t, "wednesday", plan[1].Todos[0].Task)

	for i := 2; i < 7; i++ {
		assert.Empty(t, plan[i].Todos)
	}
}

func TestWeeklyPlanSortsWithinDay(t *testing.T) {
	todos := []models.Todo{
		todo(1, "afternoon", withDue("2026-03-11 15:00")),
		todo(2, "morning", withDue("2026-03-11 09:00")),
	}

	plan := WeeklyPlan(todos, testNow)
	require.Len(t, plan[1].Todos, 2)
	assert.Equal(t, "morning", plan[1].Todos[0].Task)
	assert.Equal(t, "afternoon", plan[1].Todos[1].Task)
}

func TestRecentActivity(t *testing.T) {
	todos := []models.Todo{
		todo(100, "oldest"),
		todo(300, "newest"),
		todo(200, "middle"),
	}

	recent := RecentActivity(todos, 0)
	require.Len(t, recent, 3)
	assert.Equal(t, "newest", recent[0].Task)
	assert.Equal(t, "middle", recent[1].Task)
	assert.Equal(t, "oldest", recent[2].Task)

	assert.Len(t, RecentActivity(todos, 2), 2)
}

func TestRecentActivityTieBreak(t *testing.T) {
	a := todo(1, "first")
	b := todo(2, "second")
	a.CreatedAt = 500
	b.CreatedAt = 500

	recent := RecentActivity([]models.Todo{a, b}, 0)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Task)
}

func TestFunctionsDoNotMutateInput(t *testing.T) {
	todos := []models.Todo{
		todo(3, "c", withDue("2026-03-09")),
		todo(1, "a", withDue("2026-03-10")),
		todo(2, "b"),
	}
	original := append([]models.Todo(nil), todos...)

	FocusQueue(todos, testNow, 0)
	RecentActivity(todos, 0)
	WeeklyPlan(todos, testNow)
	CategoryBreakdown(todos)

	assert.Equal(t, original, todos)
}
