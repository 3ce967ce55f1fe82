// Package repository содержит реализацию хранилища заявок и паролей в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/moghalakrambaig/sparkle-clean-service/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrBookingNotFound возвращается, если заявка не найдена.
var (
	ErrBookingNotFound = errors.New("booking not found")
	// ErrPasswordNotFound возвращается, если секрет не найден.
	ErrPasswordNotFound = errors.New("password not found")
)

// Количество попыток сгенерировать уникальный номер заявки.
const bookingNumberAttempts = 5

// PostgresRepository предоставляет доступ к хранилищу данных в PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// newBookingNumber генерирует короткий человекочитаемый номер заявки.
func newBookingNumber() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "SC-" + strings.ToUpper(raw[:6])
}

// CreateBooking создаёт заявку со статусом Pending и сгенерированным номером.
// При коллизии номера генерация повторяется.
func (r *PostgresRepository) CreateBooking(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
	for attempt := 0; attempt < bookingNumberAttempts; attempt++ {
		number := newBookingNumber()

		var id int64
		err := r.pool.QueryRow(ctx,
			`INSERT INTO bookings (booking_number, name, email, phone, address, service, date, time, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING id`,
			number, req.Name, req.Email, req.Phone, req.Address, req.Service, req.Date, req.Time,
			string(model.BookingStatusPending),
		).Scan(&id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				continue
			}
			return nil, fmt.Errorf("insert booking: %w", err)
		}

		return &model.Booking{
			ID:            id,
			BookingNumber: number,
			Name:          req.Name,
			Email:         req.Email,
			Phone:         req.Phone,
			Address:       req.Address,
			Service:       req.Service,
			Date:          req.Date,
			Time:          req.Time,
			Status:        model.BookingStatusPending,
		}, nil
	}

	return nil, fmt.Errorf("generate booking number: attempts exhausted")
}

// AllBookings возвращает все заявки, новые первыми.
func (r *PostgresRepository) AllBookings(ctx context.Context) ([]model.Booking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, booking_number, name, email, phone, address, service, date, time, status
		 FROM bookings
		 ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		var status string
		if err := rows.Scan(&b.ID, &b.BookingNumber, &b.Name, &b.Email, &b.Phone,
			&b.Address, &b.Service, &b.Date, &b.Time, &status); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.Status = model.BookingStatus(status)
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return bookings, nil
}

// BookingByNumber возвращает заявку по её номеру (точное совпадение).
func (r *PostgresRepository) BookingByNumber(ctx context.Context, number string) (*model.Booking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, booking_number, name, email, phone, address, service, date, time, status
		 FROM bookings
		 WHERE booking_number = $1`,
		number,
	)

	var b model.Booking
	var status string
	err := row.Scan(&b.ID, &b.BookingNumber, &b.Name, &b.Email, &b.Phone,
		&b.Address, &b.Service, &b.Date, &b.Time, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	b.Status = model.BookingStatus(status)

	return &b, nil
}

// UpdateBookingStatus записывает присланный статус без проверки легальности перехода.
func (r *PostgresRepository) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $2 WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteBooking удаляет заявку по идентификатору.
func (r *PostgresRepository) DeleteBooking(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM bookings WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// AllPasswords возвращает все секреты администратора.
func (r *PostgresRepository) AllPasswords(ctx context.Context) ([]model.Password, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, password FROM admin_passwords ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("select passwords: %w", err)
	}
	defer rows.Close()

	var passwords []model.Password
	for rows.Next() {
		var p model.Password
		if err := rows.Scan(&p.ID, &p.Password); err != nil {
			return nil, fmt.Errorf("scan password: %w", err)
		}
		passwords = append(passwords, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return passwords, nil
}

// CheckPassword сообщает, есть ли такой секрет среди сохранённых.
func (r *PostgresRepository) CheckPassword(ctx context.Context, candidate string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM admin_passwords WHERE password = $1)`,
		candidate,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check password: %w", err)
	}

	return exists, nil
}

// CreatePassword сохраняет новый секрет и возвращает запись с назначенным id.
func (r *PostgresRepository) CreatePassword(ctx context.Context, password string) (*model.Password, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admin_passwords (password) VALUES ($1) RETURNING id`,
		password,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert password: %w", err)
	}

	return &model.Password{ID: id, Password: password}, nil
}

// DeletePassword удаляет секрет по идентификатору. Инвариант непустоты коллекции
// обеспечивает клиентская сторона: здесь удаление безусловное.
func (r *PostgresRepository) DeletePassword(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM admin_passwords WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrPasswordNotFound
	}

	return nil
}
