package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/game-admin-api/internal/application/otp"
	goredis "github.com/go-redis/redis/v8"
)

const otpKeyPrefix = "otp:"

// consumeScript deletes the entry only when the code matches and it has not
// expired. ARGV: code, now in Unix milliseconds.
var consumeScript = goredis.NewScript(`
local v = redis.call('HMGET', KEYS[1], 'code', 'exp')
if not v[1] then
  return 0
end
if tonumber(v[2]) <= tonumber(ARGV[2]) then
  redis.call('DEL', KEYS[1])
  return 0
end
if v[1] ~= ARGV[1] then
  return 0
end
redis.call('DEL', KEYS[1])
return 1
`)

// OTPStore keeps one hash per key that Redis expires at the entry's deadline.
type OTPStore struct {
	client *goredis.Client
}

func NewOTPStore(client *goredis.Client) *OTPStore {
	return &OTPStore{client: client}
}

func (s *OTPStore) Put(ctx context.Context, key string, e otp.Entry) error {
	k := otpKeyPrefix + key
	_, err := s.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Del(ctx, k)
		p.HSet(ctx, k, "code", e.Code, "exp", e.ExpiresAt.UnixMilli())
		p.PExpireAt(ctx, k, e.ExpiresAt)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put otp: %w", err)
	}
	return nil
}

func (s *OTPStore) Consume(ctx context.Context, key, code string, now time.Time) (bool, error) {
	n, err := consumeScript.Run(ctx, s.client, []string{otpKeyPrefix + key}, code, now.UnixMilli()).Int()
	if err != nil {
		return false, fmt.Errorf("redis consume otp: %w", err)
	}
	return n == 1, nil
}
