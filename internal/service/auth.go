package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/moghalakrambaig/sparkle-clean-service/internal/metrics"
	"github.com/moghalakrambaig/sparkle-clean-service/internal/model"
)

// ErrEmptyPassword возвращается при попытке добавить пустой секрет.
var (
	ErrEmptyPassword = errors.New("password is empty")
	// ErrDuplicatePassword возвращается при попытке добавить уже существующий секрет.
	ErrDuplicatePassword = errors.New("password already exists")
	// ErrLastPassword возвращается при попытке удалить последний оставшийся секрет.
	ErrLastPassword = errors.New("cannot delete the last password")
	// ErrPasswordsNotLoaded возвращается, если список секретов не загрузился вовремя.
	ErrPasswordsNotLoaded = errors.New("password list is not loaded")
)

// Ограничение ожидания загрузки списка секретов при логине.
// В исходной схеме ожидание было неограниченным; при недоступном хранилище
// это приводило бы к вечной блокировке.
const loginWaitTimeout = 10 * time.Second

// PasswordStore описывает контракт удалённого хранилища секретов.
type PasswordStore interface {
	AllPasswords(ctx context.Context) ([]model.Password, error)
	CreatePassword(ctx context.Context, password string) (*model.Password, error)
	DeletePassword(ctx context.Context, id int64) error
}

// AuthGate — шлюз авторизации администратора.
// Коллекция секретов загружается из хранилища один раз при старте процесса;
// Login ждёт окончания загрузки через явный сигнал готовности с таймаутом.
// Инвариант «коллекция никогда не пуста» обеспечивается на этой стороне:
// само хранилище удаляет записи безусловно.
type AuthGate struct {
	store  PasswordStore
	logger *zap.Logger

	mu        sync.Mutex
	passwords []model.Password
	loadErr   error
	ready     chan struct{}
}

// NewAuthGate создаёт шлюз авторизации поверх указанного хранилища секретов.
func NewAuthGate(store PasswordStore, logger *zap.Logger) *AuthGate {
	return &AuthGate{
		store:  store,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Load загружает список секретов из хранилища с ограниченным числом повторов
// и закрывает сигнал готовности. Вызывается один раз при старте процесса.
func (g *AuthGate) Load(ctx context.Context) {
	defer close(g.ready)

	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(500*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		passwords, err := g.store.AllPasswords(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}

		g.mu.Lock()
		g.passwords = passwords
		g.mu.Unlock()
		return nil
	})
	if err != nil {
		g.mu.Lock()
		g.loadErr = err
		g.mu.Unlock()
		g.logger.Error("load passwords failed", zap.Error(err))
		return
	}

	g.mu.Lock()
	count := len(g.passwords)
	g.mu.Unlock()
	g.logger.Info("password list loaded", zap.Int("count", count))
}

// Login сравнивает кандидата с каждым загруженным секретом (точное совпадение строк).
// Если загрузка ещё идёт, вызов ждёт её окончания, но не дольше таймаута.
// Ограничения числа попыток нет.
func (g *AuthGate) Login(ctx context.Context, candidate string) (bool, error) {
	select {
	case <-g.ready:
	case <-time.After(loginWaitTimeout):
		metrics.IncLoginAttempt("unavailable")
		return false, ErrPasswordsNotLoaded
	case <-ctx.Done():
		return false, ctx.Err()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.loadErr != nil {
		metrics.IncLoginAttempt("unavailable")
		return false, fmt.Errorf("%w: %v", ErrPasswordsNotLoaded, g.loadErr)
	}

	for _, p := range g.passwords {
		if p.Password == candidate {
			metrics.IncLoginAttempt("success")
			return true, nil
		}
	}

	metrics.IncLoginAttempt("failure")
	return false, nil
}

// Passwords возвращает копию локальной коллекции секретов.
func (g *AuthGate) Passwords() []model.Password {
	g.mu.Lock()
	defer g.mu.Unlock()

	res := make([]model.Password, len(g.passwords))
	copy(res, g.passwords)
	return res
}

// AddSecret добавляет новый секрет: пустые и уже существующие значения
// отклоняются локально до обращения к хранилищу; локальная коллекция
// пополняется только после подтверждённого успеха.
func (g *AuthGate) AddSecret(ctx context.Context, value string) (*model.Password, error) {
	if value == "" {
		return nil, ErrEmptyPassword
	}

	g.mu.Lock()
	for _, p := range g.passwords {
		if p.Password == value {
			g.mu.Unlock()
			return nil, ErrDuplicatePassword
		}
	}
	g.mu.Unlock()

	created, err := g.store.CreatePassword(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("create password: %w", err)
	}

	g.mu.Lock()
	g.passwords = append(g.passwords, *created)
	g.mu.Unlock()

	return created, nil
}

// DeleteSecret удаляет секрет по идентификатору. Удаление, которое оставило бы
// коллекцию пустой, отклоняется.
func (g *AuthGate) DeleteSecret(ctx context.Context, id int64) error {
	g.mu.Lock()
	if len(g.passwords) <= 1 {
		g.mu.Unlock()
		return ErrLastPassword
	}
	g.mu.Unlock()

	if err := g.store.DeletePassword(ctx, id); err != nil {
		return fmt.Errorf("delete password: %w", err)
	}

	g.mu.Lock()
	for i, p := range g.passwords {
		if p.ID == id {
			g.passwords = append(g.passwords[:i], g.passwords[i+1:]...)
			break
		}
	}
	g.mu.Unlock()

	return nil
}
