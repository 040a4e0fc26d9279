package messaging

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher 메시지 발행 인터페이스
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// RedisClient Redis pub/sub 클라이언트 인터페이스
type RedisClient interface {
	Publisher
	Subscribe(ctx context.Context, channel string) (<-chan Message, error)
	Close() error
}

// Message 구독으로 받은 메시지
type Message struct {
	Channel string
	Payload []byte
	Time    time.Time
}

// RedisOptions Redis 연결 옵션
type RedisOptions struct {
	Addr     string
	Username string
	Password string
	DB       int
	TLS      bool
}

type redisClient struct {
	client redis.UniversalClient
}

// NewRedisClient는 Redis에 연결하고 PING으로 확인한 뒤 클라이언트를 반환합니다.
func NewRedisClient(ctx context.Context, opts RedisOptions) (RedisClient, error) {
	ro := &redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	}
	if opts.TLS {
		ro.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(ro)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	return NewRedisClientFrom(client), nil
}

// NewRedisClientFrom은 이미 생성된 go-redis 클라이언트를 감쌉니다.
func NewRedisClientFrom(client redis.UniversalClient) RedisClient {
	return &redisClient{client: client}
}

// Publish는 message를 JSON으로 직렬화해 channel에 발행합니다.
func (r *redisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("메시지 직렬화 실패: %w", err)
	}
	return r.client.Publish(ctx, channel, payload).Err()
}

// Subscribe는 channel을 구독합니다. ctx가 끝나면 반환된 채널이 닫힙니다.
func (r *redisClient) Subscribe(ctx context.Context, channel string) (<-chan Message, error) {
	pubsub := r.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("채널 구독 실패: %w", err)
	}

	out := make(chan Message)
	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- Message{Channel: msg.Channel, Payload: []byte(msg.Payload), Time: time.Now()}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
