package postgres

import (
	"context"

	"churchadmin/internal/domain/repository"
	"churchadmin/internal/errors"

	"gorm.io/gorm"
)

// crud implements the operations every repository shares over a model M
// that maps to a domain entity E.
type crud[M any, E any] struct {
	db       *gorm.DB
	kind     string
	idOf     func(*E) string
	toModel  func(*E) *M
	toEntity func(*M) *E
}

func (c *crud[M, E]) list(ctx context.Context, query string, args ...any) ([]*E, error) {
	var rows []*M
	tx := c.db.WithContext(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", c.kind)
	}

	out := make([]*E, len(rows))
	for i, m := range rows {
		out[i] = c.toEntity(m)
	}

	return out, nil
}

func (c *crud[M, E]) first(ctx context.Context, query string, args ...any) (*E, error) {
	var m M
	if err := c.db.WithContext(ctx).Where(query, args...).Order("created_at, id").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s", c.kind)
	}

	return c.toEntity(&m), nil
}

func (c *crud[M, E]) find(ctx context.Context, id string) (*E, error) {
	return c.first(ctx, "id = ?", id)
}

func (c *crud[M, E]) create(ctx context.Context, e *E) (*M, error) {
	m := c.toModel(e)
	if err := c.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, translateWriteError(err, c.kind, "create")
	}

	return m, nil
}

// update replaces every column except the creation timestamp.
func (c *crud[M, E]) update(ctx context.Context, e *E) error {
	res := c.db.WithContext(ctx).
		Model(new(M)).
		Where("id = ?", c.idOf(e)).
		Select("*").
		Omit("id", "created_at").
		Updates(c.toModel(e))
	if res.Error != nil {
		return translateWriteError(res.Error, c.kind, "update")
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (c *crud[M, E]) delete(ctx context.Context, id string) error {
	res := c.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return translateWriteError(res.Error, c.kind, "delete")
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
