package repository

import (
	"context"
	"fmt"
	"strings"

	"uevent/internal/database"
	"uevent/internal/models"
)

type ReactionRepository struct {
	db *database.DB
}

func NewReactionRepository(db *database.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// CreateMany bulk-inserts reactions, silently skipping duplicate
// (user, comment) pairs. Returns the number of rows actually inserted.
func (r *ReactionRepository) CreateMany(ctx context.Context, reactions []models.Reaction) (int64, error) {
	var inserted int64
	for start := 0; start < len(reactions); start += maxInsertRows {
		end := min(start+maxInsertRows, len(reactions))
		chunk := reactions[start:end]

		var sb strings.Builder
		sb.WriteString("INSERT INTO reactions (type, user_id, comment_id) VALUES ")
		args := make([]interface{}, 0, len(chunk)*3)
		for i, re := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
			args = append(args, re.Type, re.UserID, re.CommentID)
		}
		sb.WriteString(" ON CONFLICT DO NOTHING")

		res, err := r.db.ExecContext(ctx, sb.String(), args...)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert reactions: %w", err)
		}
		n, _ := res.RowsAffected()
		inserted += n
	}
	return inserted, nil
}
