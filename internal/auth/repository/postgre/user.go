package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	repo "tasktrack/internal/auth/repository"
	"tasktrack/internal/model"
)

const userColumns = `id, email, username, hashed_password, oauth_provider, oauth_id, created_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var (
		u              model.User
		hashedPassword sql.NullString
		provider       sql.NullString
		oauthID        sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &u.Username, &hashedPassword, &provider, &oauthID, &u.CreatedAt)
	if err != nil {
		return model.User{}, err
	}
	u.HashedPassword = hashedPassword.String
	u.OAuthProvider = provider.String
	u.OAuthID = oauthID.String
	return u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateUser inserts a new account row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (email, username, hashed_password, oauth_provider, oauth_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, userColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.Email,
		opt.Username,
		nullString(opt.HashedPassword),
		nullString(opt.OAuthProvider),
		nullString(opt.OAuthID),
	)
	u, err := scanUser(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsertUser
	}
	return u, nil
}

// GetOneUser retrieves a single user by the provided selectors (AND
// condition). Returns zero-value User (ID == 0) when not found — do NOT
// return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
		idx++
	}
	if opt.OAuthProvider != "" && opt.OAuthID != "" {
		conditions = append(conditions,
			fmt.Sprintf("oauth_provider = $%d", idx),
			fmt.Sprintf("oauth_id = $%d", idx+1))
		args = append(args, opt.OAuthProvider, opt.OAuthID)
		idx += 2
	}
	if len(conditions) == 0 {
		return model.User{}, repo.ErrFailedToGetUser
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s LIMIT 1`,
		userColumns, strings.Join(conditions, " AND "))

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGetUser
	}
	return u, nil
}
