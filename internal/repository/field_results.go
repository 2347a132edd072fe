package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/klearrshipping/cudabot/internal/common"
	"github.com/klearrshipping/cudabot/internal/entity"
)

type FieldResultRepository interface {
	// ReplaceForOrder deletes any previous results for the order and stores
	// the new set atomically, so re-processing stays idempotent.
	ReplaceForOrder(ctx context.Context, orderID uuid.UUID, results []*entity.FieldResult) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.FieldResult, error)
}

type fieldResultRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewFieldResultRepository(pool *pgxpool.Pool, logger *slog.Logger) FieldResultRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &fieldResultRepository{pool: pool, logger: logger}
}

func (r *fieldResultRepository) ReplaceForOrder(ctx context.Context, orderID uuid.UUID, results []*entity.FieldResult) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return common.WrapError(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM esad_field_result WHERE order_id = $1`, orderID); err != nil {
		r.logger.Error("failed to clear field results", "order_id", orderID, "error", err)
		return common.WrapError(err, "clear field results")
	}

	const q = `
		INSERT INTO esad_field_result
			(id, order_id, box, code, label, confidence, matched_rule,
			 signal, signal_origin, fallback_used, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())`

	for _, fr := range results {
		_, err := tx.Exec(ctx, q,
			uuid.New(), orderID, fr.Box, fr.Code, fr.Label, fr.Confidence,
			fr.MatchedRule, fr.Signal, fr.SignalOrigin, fr.FallbackUsed, fr.Reason,
		)
		if err != nil {
			r.logger.Error("failed to insert field result", "order_id", orderID, "box", fr.Box, "error", err)
			return common.WrapError(err, "insert field result")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return common.WrapError(err, "commit field results")
	}
	return nil
}

func (r *fieldResultRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.FieldResult, error) {
	const q = `
		SELECT id, order_id, box, code, label, confidence, matched_rule,
		       signal, signal_origin, fallback_used, reason, created_at
		FROM esad_field_result
		WHERE order_id = $1
		ORDER BY box`

	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		r.logger.Error("failed to list field results", "order_id", orderID, "error", err)
		return nil, common.WrapError(err, "list field results")
	}
	defer rows.Close()

	var out []*entity.FieldResult
	for rows.Next() {
		var fr entity.FieldResult
		if err := rows.Scan(
			&fr.ID, &fr.OrderID, &fr.Box, &fr.Code, &fr.Label, &fr.Confidence,
			&fr.MatchedRule, &fr.Signal, &fr.SignalOrigin, &fr.FallbackUsed,
			&fr.Reason, &fr.CreatedAt,
		); err != nil {
			return nil, common.WrapError(err, "scan field result")
		}
		out = append(out, &fr)
	}
	return out, rows.Err()
}
