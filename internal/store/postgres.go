package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Ensure PostgresStore implements Store at compile time.
var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a new PostgresStore with at most poolSize
// connections. A non-positive poolSize uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize) //nolint:gosec // small configured value

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations and returns their versions.
func (s *PostgresStore) Migrate(ctx context.Context) ([]string, error) {
	return RunMigrations(ctx, s.pool)
}

// AddFavorite inserts or refreshes a favorite by product id.
func (s *PostgresStore) AddFavorite(ctx context.Context, f *domain.Favorite) error {
	args := pgx.NamedArgs{
		"id":        f.ID,
		"title":     f.Title,
		"price":     f.Price,
		"currency":  f.Currency,
		"thumbnail": f.Thumbnail,
	}

	if err := s.pool.QueryRow(ctx, queryAddFavorite, args).Scan(&f.CreatedAt, &f.UpdatedAt); err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}
	return nil
}

// GetFavorite retrieves a favorite by product id.
func (s *PostgresStore) GetFavorite(ctx context.Context, id string) (*domain.Favorite, error) {
	rows, err := s.pool.Query(ctx, queryGetFavorite, id)
	if err != nil {
		return nil, fmt.Errorf("querying favorite: %w", err)
	}

	f, err := pgx.CollectExactlyOneRow(rows, scanFavorite)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFavorites queries favorites with optional filters, returning results
// and the total count before pagination.
func (s *PostgresStore) ListFavorites(
	ctx context.Context,
	q *FavoriteQuery,
) ([]domain.Favorite, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting favorites: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying favorites: %w", err)
	}

	favorites, err := pgx.CollectRows(rows, scanFavorite)
	if err != nil {
		return nil, 0, fmt.Errorf("scanning favorites: %w", err)
	}

	return favorites, total, nil
}

// RemoveFavorite deletes a favorite by product id.
func (s *PostgresStore) RemoveFavorite(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryRemoveFavorite, id)
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateFavoritePrice stores the latest title and price of a favorite,
// keeping the previous price when it changed.
func (s *PostgresStore) UpdateFavoritePrice(
	ctx context.Context,
	id, title string,
	price float64,
) error {
	args := pgx.NamedArgs{
		"id":    id,
		"title": title,
		"price": price,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateFavoritePrice, args)
	if err != nil {
		return fmt.Errorf("updating favorite price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanFavorite(row pgx.CollectableRow) (domain.Favorite, error) {
	var f domain.Favorite
	err := row.Scan(
		&f.ID, &f.Title, &f.Price, &f.Currency, &f.Thumbnail, &f.CreatedAt, &f.UpdatedAt,
	)
	return f, err
}
