package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/kelola-hr/leave-ledger-go/internal/domain/holiday"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

// IsHoliday implements holiday.HolidayRepository.
func (h *holidayRepository) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, h.db)

	query := `SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1)`

	var isHoliday bool
	if err := q.QueryRow(ctx, query, date.Format("2006-01-02")).Scan(&isHoliday); err != nil {
		return false, fmt.Errorf("failed to check holiday calendar: %w", err)
	}

	return isHoliday, nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}
