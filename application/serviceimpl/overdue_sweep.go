package serviceimpl

import (
	"context"
	"time"

	"taskboard/domain/repositories"
	"taskboard/pkg/insights"
	"taskboard/pkg/logger"
)

const sweepPageSize = 100

// OverdueSweep คือ job รายวันที่ log จำนวนงานค้างต่อ user
// เอาไว้ดู health ของระบบจาก log โดยไม่ต้อง query เอง
type OverdueSweep struct {
	userRepo repositories.UserRepository
	todoRepo repositories.TodoRepository
}

func NewOverdueSweep(userRepo repositories.UserRepository, todoRepo repositories.TodoRepository) *OverdueSweep {
	return &OverdueSweep{
		userRepo: userRepo,
		todoRepo: todoRepo,
	}
}

func (s *OverdueSweep) Run() {
	ctx := context.Background()
	now := time.Now()

	total := 0
	usersWithOverdue := 0

	for offset := 0; ; offset += sweepPageSize {
		users, err := s.userRepo.List(ctx, offset, sweepPageSize)
		if err != nil {
			logger.Error("Overdue sweep failed to list users", "error", err)
			return
		}
		if len(users) == 0 {
			break
		}

		for _, user := range users {
			todos, err := s.todoRepo.ListByUser(ctx, user.ID)
			if err != nil {
				logger.Warn("Overdue sweep failed to list todos", "user_id", user.ID, "error", err)
				continue
			}
			for i := range todos {
				todos[i].Normalize()
			}

			counts := insights.DueCounts(todos, now)
			if counts.Overdue > 0 {
				usersWithOverdue++
				total += counts.Overdue
				logger.Info("Overdue tasks",
					"user_id", user.ID,
					"username", user.Username,
					"overdue", counts.Overdue,
					"due_today", counts.Today,
				)
			}
		}

		if len(users) < sweepPageSize {
			break
		}
	}

	logger.Info("Overdue sweep completed", "users_with_overdue", usersWithOverdue, "total_overdue", total)
}
