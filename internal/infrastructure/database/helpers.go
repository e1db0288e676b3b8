package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// DBTX là phần chung của *pgxpool.Pool và pgx.Tx mà repository cần
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxStarter là DBTX có thể mở transaction (*pgxpool.Pool, pgx.Tx)
type TxStarter interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SelectAll query nhiều row và map vào struct theo tag `db`
func SelectAll[T any](ctx context.Context, db DBTX, sql string, args ...any) ([]*T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// SelectOne query đúng một row, không có row → pgx.ErrNoRows
func SelectOne[T any](ctx context.Context, db DBTX, sql string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Count chạy câu SELECT COUNT(*)
func Count(ctx context.Context, db DBTX, sql string, args ...any) (int, error) {
	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Exists chạy SELECT EXISTS(...)
func Exists(ctx context.Context, db DBTX, sql string, args ...any) (bool, error) {
	var exists bool
	if err := db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// IsNoRows wrap errors.Is(err, pgx.ErrNoRows)
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// UniqueViolation trả về tên constraint nếu err là lỗi 23505
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// IsUniqueOn: err là unique violation trên đúng constraint
func IsUniqueOn(err error, constraint string) bool {
	name, ok := UniqueViolation(err)
	return ok && name == constraint
}

// IsForeignKeyViolation: insert/update trỏ tới row không tồn tại
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// Ping kiểm tra database connection còn sống không
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close đóng pool, gọi nhiều lần vẫn an toàn
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		log.Debug().Msg("[DATABASE] Pool is already closed or was never initialized")
		return nil
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Info().Msg("[DATABASE] Connection pool closed successfully")
	return nil
}

// PoolStats là snapshot thống kê pool, trả về trong /api/health
type PoolStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	MaxConns      int32 `json:"max_conns"`
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		TotalConns:    raw.TotalConns(),
		IdleConns:     raw.IdleConns(),
		AcquiredConns: raw.AcquiredConns(),
		MaxConns:      raw.MaxConns(),
	}, nil
}

// SelectPage chạy COUNT(*) và SELECT ... LIMIT/OFFSET trên cùng FROM + WHERE.
// where là output của query.Builder.SQL(1) (đã đánh số $1..$n).
func SelectPage[T any](ctx context.Context, db DBTX, columns, from, where string, args []any, orderBy string, limit, offset int) ([]*T, int, error) {
	total, err := Count(ctx, db, "SELECT COUNT(*) FROM "+from+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", from, err)
	}
	if total == 0 {
		return []*T{}, 0, nil
	}

	n := len(args)
	sql := fmt.Sprintf("SELECT %s FROM %s%s%s LIMIT $%d OFFSET $%d", columns, from, where, orderBy, n+1, n+2)
	pageArgs := make([]any, 0, n+2)
	pageArgs = append(pageArgs, args...)
	pageArgs = append(pageArgs, limit, offset)

	items, err := SelectAll[T](ctx, db, sql, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("select %s: %w", from, err)
	}
	return items, total, nil
}
