package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrLinkTokenNotFound возвращается, когда токен ссылки не найден
	// или уже истек
	ErrLinkTokenNotFound = errors.New("tokenstore: link token not found")

	// ErrRedisUnavailable возвращается при ошибке обращения к Redis
	ErrRedisUnavailable = errors.New("tokenstore: redis operation failed")
)

// RedisStore хранит короткоживущие токены персональных ссылок
// (токен -> телефон клиента) с TTL на стороне Redis
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище и проверяет соединение
func NewRedisStore(addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: NewRedisStore - ping: %v", ErrRedisUnavailable, err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// Put сохраняет токен с привязанным телефоном
func (s *RedisStore) Put(ctx context.Context, token, phone string) error {
	if err := s.client.Set(ctx, key(token), phone, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Put - set: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Get возвращает телефон, привязанный к токену
func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	phone, err := s.client.Get(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrLinkTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - get: %v", ErrRedisUnavailable, err)
	}
	return phone, nil
}

// Delete удаляет токен после использования
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func key(token string) string {
	return fmt.Sprintf("linktoken:%s", token)
}
