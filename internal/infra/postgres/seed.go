package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"heritage-quiz-service/internal/domain"
	"github.com/uptrace/bun"
)

type questionBankRow struct {
	bun.BaseModel `bun:"table:question_banks"`

	ID        string          `bun:"id,pk"`
	Name      string          `bun:"name"`
	Data      json.RawMessage `bun:"data,type:jsonb"`
	UpdatedAt time.Time       `bun:"updated_at"`
}

// SeedBank upserts every category of bank into question_banks.
func SeedBank(ctx context.Context, db *bun.DB, bank domain.QuestionBank) (int, error) {
	if err := bank.Validate(); err != nil {
		return 0, err
	}
	if len(bank) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	rows := make([]questionBankRow, 0, len(bank))
	for _, c := range bank.Summaries() {
		data, err := json.Marshal(bank[c.ID])
		if err != nil {
			return 0, fmt.Errorf("marshal category %s: %w", c.ID, err)
		}
		rows = append(rows, questionBankRow{ID: c.ID, Name: c.Name, Data: data, UpdatedAt: now})
	}

	_, err := db.NewInsert().
		Model(&rows).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed question banks: %w", err)
	}
	return len(rows), nil
}
