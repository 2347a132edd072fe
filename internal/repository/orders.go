package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/common"
	"github.com/klearrshipping/cudabot/internal/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, reference string) (*entity.Order, error)
	GetByReference(ctx context.Context, reference string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.OrderStatus) error
}

type orderRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOrderRepository(pool *pgxpool.Pool, logger *slog.Logger) OrderRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &orderRepository{pool: pool, logger: logger}
}

func (r *orderRepository) Create(ctx context.Context, reference string) (*entity.Order, error) {
	const q = `
		INSERT INTO esad_order (id, reference, status, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (reference) DO UPDATE SET updated_at = now()
		RETURNING id, reference, status, created_at, updated_at`

	var o entity.Order
	err := r.pool.QueryRow(ctx, q, uuid.New(), reference, constants.OrderStatusQueued).
		Scan(&o.ID, &o.Reference, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		r.logger.Error("failed to create order", "reference", reference, "error", err)
		return nil, common.WrapError(err, "create order")
	}
	return &o, nil
}

func (r *orderRepository) GetByReference(ctx context.Context, reference string) (*entity.Order, error) {
	const q = `
		SELECT id, reference, status, created_at, updated_at
		FROM esad_order WHERE reference = $1`

	var o entity.Order
	err := r.pool.QueryRow(ctx, q, reference).
		Scan(&o.ID, &o.Reference, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get order", "reference", reference, "error", err)
		return nil, common.WrapError(err, "get order")
	}
	return &o, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.OrderStatus) error {
	const q = `UPDATE esad_order SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id, status)
	if err != nil {
		r.logger.Error("failed to update order status", "order_id", id, "status", status, "error", err)
		return common.WrapError(err, "update order status")
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
