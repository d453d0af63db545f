package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tasktrack/internal/category"
	repo "tasktrack/internal/category/repository"
	"tasktrack/internal/model"
)

// CreateCategory inserts a new Category row and returns the created entity.
func (r *implRepository) CreateCategory(ctx context.Context, sc model.Scope, opt repo.CreateCategoryOptions) (category.Category, error) {
	const query = `
		INSERT INTO categories (user_id, name)
		VALUES ($1, $2)
		RETURNING id, name`

	var cat category.Category
	err := r.db.QueryRowContext(ctx, query, sc.UserID, opt.Name).Scan(&cat.ID, &cat.Name)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return category.Category{}, repo.ErrFailedToInsert
	}
	return cat, nil
}

// GetOneCategory retrieves a single Category by the provided filters (AND
// condition). Returns zero-value Category (ID == 0) when not found — do NOT
// return error for not-found.
func (r *implRepository) GetOneCategory(ctx context.Context, sc model.Scope, opt repo.GetOneCategoryOptions) (category.Category, error) {
	conditions := []string{"user_id = $1"}
	args := []any{sc.UserID}
	idx := 2

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name = $%d", idx))
		args = append(args, opt.Name)
		idx++
	}

	query := fmt.Sprintf(
		`SELECT id, name FROM categories WHERE %s LIMIT 1`,
		strings.Join(conditions, " AND "),
	)

	var cat category.Category
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&cat.ID, &cat.Name)
	if err == sql.ErrNoRows {
		return category.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return category.Category{}, repo.ErrFailedToGet
	}
	return cat, nil
}

// ListCategories returns the user's categories in creation order.
func (r *implRepository) ListCategories(ctx context.Context, sc model.Scope) ([]category.Category, error) {
	const query = `SELECT id, name FROM categories WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var cat category.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCategories"), err)
			return nil, repo.ErrFailedToList
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	return categories, nil
}

// UpdateCategory renames a Category and returns the updated entity. Returns
// zero-value Category when the row does not exist for this user.
func (r *implRepository) UpdateCategory(ctx context.Context, sc model.Scope, opt repo.UpdateCategoryOptions) (category.Category, error) {
	const query = `
		UPDATE categories SET name = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, name`

	var cat category.Category
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.ID, sc.UserID).Scan(&cat.ID, &cat.Name)
	if err == sql.ErrNoRows {
		return category.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return category.Category{}, repo.ErrFailedToUpdate
	}
	return cat, nil
}

// DeleteCategory removes the category and its member tasks in one
// transaction, returning the number of tasks removed. The tasks FK also has
// ON DELETE CASCADE; deleting explicitly lets us report the count.
func (r *implRepository) DeleteCategory(ctx context.Context, sc model.Scope, id int64) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteCategory"), err)
		return 0, repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM tasks WHERE category_id = $1 AND user_id = $2`, id, sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s tasks: %v", r.dsn("DeleteCategory"), err)
		return 0, repo.ErrFailedToDelete
	}
	deleted, _ := res.RowsAffected()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, sc.UserID); err != nil {
		r.l.Errorf(ctx, "%s category: %v", r.dsn("DeleteCategory"), err)
		return 0, repo.ErrFailedToDelete
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteCategory"), err)
		return 0, repo.ErrFailedToDelete
	}
	return int(deleted), nil
}
