package menu

import (
	"context"
	"database/sql"
	"errors"

	"smoothbux-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	ListItems(ctx context.Context) ([]*MenuItem, error)
	GetItem(ctx context.Context, id string) (*MenuItem, error)
	CreateItem(ctx context.Context, input CreateItemInput) (*MenuItem, error)
	DeleteItem(ctx context.Context, id string) error
	SetItemAvailability(ctx context.Context, id string, available bool) error

	ListOptions(ctx context.Context) ([]*MenuOption, error)
	CreateOption(ctx context.Context, input CreateOptionInput) (*MenuOption, error)
	DeleteOption(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListItems(ctx context.Context) ([]*MenuItem, error) {
	query := `
		SELECT id, name, description, image_url, ingredients, is_available, category, created_at
		FROM menu_items
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query menu items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []*MenuItem
	for rows.Next() {
		var m MenuItem
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Description,
			&m.ImageURL,
			pq.Array(&m.Ingredients),
			&m.IsAvailable,
			&m.Category,
			&m.CreatedAt,
		); err != nil {
			logger.FromCtx(ctx).Error("failed to scan menu item row", zap.Error(err))
			return nil, err
		}
		items = append(items, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) GetItem(ctx context.Context, id string) (*MenuItem, error) {
	query := `
		SELECT id, name, description, image_url, ingredients, is_available, category, created_at
		FROM menu_items
		WHERE id = $1
	`

	var m MenuItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.ImageURL,
		pq.Array(&m.Ingredients),
		&m.IsAvailable,
		&m.Category,
		&m.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) CreateItem(ctx context.Context, input CreateItemInput) (*MenuItem, error) {
	query := `
		INSERT INTO menu_items (id, name, description, image_url, ingredients, is_available, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, description, image_url, ingredients, is_available, category, created_at
	`

	var m MenuItem
	err := r.db.QueryRowContext(ctx, query,
		uuid.New().String(),
		input.Name,
		input.Description,
		input.ImageURL,
		pq.Array(input.Ingredients),
		input.IsAvailable,
		input.Category,
	).Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.ImageURL,
		pq.Array(&m.Ingredients),
		&m.IsAvailable,
		&m.Category,
		&m.CreatedAt,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert menu item", zap.Error(err))
		return nil, err
	}

	return &m, nil
}

func (r *repository) DeleteItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) SetItemAvailability(ctx context.Context, id string, available bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE menu_items SET is_available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) ListOptions(ctx context.Context) ([]*MenuOption, error) {
	query := `
		SELECT id, name, category, is_available
		FROM menu_options
		ORDER BY category, name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query menu options", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var options []*MenuOption
	for rows.Next() {
		var o MenuOption
		if err := rows.Scan(&o.ID, &o.Name, &o.Category, &o.IsAvailable); err != nil {
			return nil, err
		}
		options = append(options, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return options, nil
}

func (r *repository) CreateOption(ctx context.Context, input CreateOptionInput) (*MenuOption, error) {
	query := `
		INSERT INTO menu_options (id, name, category, is_available)
		VALUES ($1, $2, $3, true)
		RETURNING id, name, category, is_available
	`

	var o MenuOption
	err := r.db.QueryRowContext(ctx, query, uuid.New().String(), input.Name, input.Category).
		Scan(&o.ID, &o.Name, &o.Category, &o.IsAvailable)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert menu option", zap.Error(err))
		return nil, err
	}

	return &o, nil
}

func (r *repository) DeleteOption(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_options WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOptionNotFound
	}
	return nil
}
