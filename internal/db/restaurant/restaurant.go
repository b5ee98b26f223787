package restaurant

import (
	"context"
	"errors"
	"fmt"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/modweek"
	"openhours/internal/core/domain/restaurant"
	"openhours/internal/db"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const selectRestaurant = `SELECT id, name, hours, created_at, updated_at FROM restaurant`

type PgxRestaurantRepository struct {
	db db.DBTX
}

func NewPgxRestaurantRepository(dbtx db.DBTX) *PgxRestaurantRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxRestaurantRepository{db: dbtx}
}

func (r *PgxRestaurantRepository) Upsert(ctx context.Context, input restaurant.UpsertInput) (rest restaurant.Restaurant, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO restaurant (name, hours, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (name) DO UPDATE SET hours = EXCLUDED.hours, updated_at = EXCLUDED.updated_at
		RETURNING id, name, hours, created_at, updated_at`,
		input.Name,
		input.Hours,
		input.At,
	)
	return scanRestaurant(row)
}

func (r *PgxRestaurantRepository) GetByName(
	ctx context.Context,
	name string,
) (rest restaurant.RestaurantWithIntervals, err error) {
	rest.Restaurant, err = scanRestaurant(r.db.QueryRow(ctx, selectRestaurant+` WHERE name = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return rest, restaurant.ErrRestaurantDoesNotExist
	}
	if err != nil {
		return rest, err
	}
	intervals, err := r.readIntervals(ctx, []int64{int64(rest.ID)})
	if err != nil {
		return rest, err
	}
	rest.Intervals = intervals[rest.ID]
	return rest, nil
}

func (r *PgxRestaurantRepository) Read(
	ctx context.Context,
	options restaurant.ReadOptions,
) ([]restaurant.RestaurantWithIntervals, error) {
	where, args := buildWhere(options)
	query := selectRestaurant + where + orderBy(options.OrderBy)
	if options.Limit.IsPresent {
		args = append(args, options.Limit.Value)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if options.Offset > 0 {
		args = append(args, options.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]restaurant.RestaurantWithIntervals, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, restaurant.RestaurantWithIntervals{Restaurant: rest})
		ids = append(ids, int64(rest.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	intervals, err := r.readIntervals(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Intervals = intervals[result[i].ID]
	}
	return result, nil
}

func (r *PgxRestaurantRepository) Count(ctx context.Context, options restaurant.ReadOptions) (uint, error) {
	where, args := buildWhere(options)
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM restaurant`+where, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxRestaurantRepository) readIntervals(
	ctx context.Context,
	ids []int64,
) (map[restaurant.ID][]hours.Interval, error) {
	result := make(map[restaurant.ID][]hours.Interval, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT restaurant_id, open_at, close_at FROM restaurant_interval
		WHERE restaurant_id = ANY($1)
		ORDER BY restaurant_id, position`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id              int64
			openAt, closeAt int64
		)
		if err := rows.Scan(&id, &openAt, &closeAt); err != nil {
			return nil, err
		}
		result[restaurant.ID(id)] = append(
			result[restaurant.ID(id)],
			hours.Interval{Open: modweek.New(openAt), Close: modweek.New(closeAt)},
		)
	}
	return result, rows.Err()
}

func scanRestaurant(row pgx.Row) (rest restaurant.Restaurant, err error) {
	var id int64
	err = row.Scan(&id, &rest.Name, &rest.Hours, &rest.CreatedAt, &rest.UpdatedAt)
	rest.ID = restaurant.ID(id)
	return rest, err
}

func buildWhere(options restaurant.ReadOptions) (string, []interface{}) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	if options.NameEquals.IsPresent {
		args = append(args, options.NameEquals.Value)
		conditions = append(conditions, fmt.Sprintf("name = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func orderBy(order restaurant.OrderBy) string {
	switch order {
	case restaurant.OrderByNameAsc:
		return " ORDER BY name ASC, id ASC"
	case restaurant.OrderByNameDesc:
		return " ORDER BY name DESC, id ASC"
	default:
		return " ORDER BY id ASC"
	}
}

type PgxIntervalRepository struct {
	db db.DBTX
}

func NewPgxIntervalRepository(dbtx db.DBTX) *PgxIntervalRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxIntervalRepository{db: dbtx}
}

// Replace must run inside a transaction so readers never see a partial set.
func (r *PgxIntervalRepository) Replace(ctx context.Context, id restaurant.ID, intervals []hours.Interval) error {
	_, err := r.db.Exec(ctx, `DELETE FROM restaurant_interval WHERE restaurant_id = $1`, int64(id))
	if err != nil {
		return err
	}
	for position, interval := range intervals {
		_, err := r.db.Exec(
			ctx,
			`INSERT INTO restaurant_interval (restaurant_id, position, open_at, close_at) VALUES ($1, $2, $3, $4)`,
			int64(id),
			position,
			interval.Open.Seconds(),
			interval.Close.Seconds(),
		)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == db.PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE {
			return restaurant.ErrRestaurantDoesNotExist
		}
		if err != nil {
			return err
		}
	}
	return nil
}
