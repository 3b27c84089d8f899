package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

type ValkeyClient struct {
	Client valkey.Client
	mu     sync.Mutex
}

const (
	VALKEY_REPORT_CACHE_PREFIX = "reports:cache:"
	VALKEY_USAGE_PREFIX        = "usage:"

	reportCacheTTLSeconds = 3600
	// Usage keys are named by month; the TTL only has to outlive the month
	// they belong to.
	usageTTLSeconds = 40 * 24 * 3600
)

func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		client, err := newValkeyClient()
		if err != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err))
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")

		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func newValkeyClient() (valkey.Client, error) {
	valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
	valkeyPassword := os.Getenv("VALKEY_PASSWORD")
	useTLS := os.Getenv("VALKEY_TLS") == "true"

	opts := valkey.ClientOption{
		InitAddress: []string{
			valkeyAddr,
		},
		Password:         valkeyPassword,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if useTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if c := client.Do(ctx, client.B().Ping().Build()); c.Error() != nil {
		return nil, c.Error()
	}

	return client, nil
}

func (vc *ValkeyClient) recreateClient() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[ValkeyClient] Recreate failed and was recovered from panic",
				slog.Any("panic", r))
		}
	}()

	vc.mu.Lock()
	defer vc.mu.Unlock()
	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	vc.Client.Close()

	client, err := newValkeyClient()
	if err != nil {
		panic(fmt.Errorf("[ValkeyClient] failed to recreate Valkey: %w", err))
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey")
	vc.Client = client
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

func GetValkeyClient() *ValkeyClient {
	if valkeyInstance == nil {
		panic("[ValkeyClient] Error: Valkey client is not initilialized")
	}
	return valkeyInstance
}

// CacheReport stores a serialized analysis report under its content hash
// with a bounded TTL.
func (vc *ValkeyClient) CacheReport(ctx context.Context, key string, payload []byte) error {
	cacheKey := VALKEY_REPORT_CACHE_PREFIX + key
	completed := []valkey.Completed{
		vc.Client.B().Set().Key(cacheKey).Value(string(payload)).Build(),
		vc.Client.B().Expire().Key(cacheKey).Seconds(reportCacheTTLSeconds).Build(),
	}

	responses := vc.DoMultiWithRetry(ctx, completed, 3)
	for _, res := range responses {
		if err := res.Error(); err != nil {
			return err
		}
	}

	slog.Info("[ValkeyClient] Report cached",
		slog.String("cache_key", key))
	return nil
}

// GetCachedReport returns the serialized report for a content hash, if any.
func (vc *ValkeyClient) GetCachedReport(ctx context.Context, key string) ([]byte, bool) {
	res := vc.DoWithRetry(ctx, vc.Client.B().Get().Key(VALKEY_REPORT_CACHE_PREFIX+key).Build(), 3)

	if err := res.Error(); err != nil {
		if isConnectionError(err) {
			vc.recreateClient()
		}
		return nil, false
	}

	payload, err := res.AsBytes()
	if err != nil {
		return nil, false
	}

	return payload, true
}

// IncrUsage bumps a user's monthly counter for one quota kind and returns
// the new value. The key carries the month so counters reset naturally.
func (vc *ValkeyClient) IncrUsage(ctx context.Context, userID string, kind string, month string) (int64, error) {
	usageKey := usageKey(userID, kind, month)

	res := vc.DoWithRetry(ctx, vc.Client.B().Incr().Key(usageKey).Build(), 3)
	if err := res.Error(); err != nil {
		if isConnectionError(err) {
			vc.recreateClient()
		}
		return 0, err
	}

	count, err := res.AsInt64()
	if err != nil {
		return 0, err
	}

	vc.DoWithRetry(ctx, vc.Client.B().Expire().Key(usageKey).Seconds(usageTTLSeconds).Build(), 3)

	return count, nil
}

// GetUsage reads a user's monthly counter; missing keys read as zero.
func (vc *ValkeyClient) GetUsage(ctx context.Context, userID string, kind string, month string) (int64, error) {
	res := vc.DoWithRetry(ctx, vc.Client.B().Get().Key(usageKey(userID, kind, month)).Build(), 3)
	if err := res.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return 0, nil
		}
		return 0, err
	}

	return res.AsInt64()
}

func usageKey(userID, kind, month string) string {
	return VALKEY_USAGE_PREFIX + kind + ":" + month + ":" + userID
}

func (vc *ValkeyClient) DoMultiWithRetry(ctx context.Context, completed []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult

	for i := 0; i < retries; i++ {
		results = vc.Client.DoMulti(ctx, completed...)
		hasErr := false
		for _, r := range results {
			if r.Error() != nil {
				hasErr = true
				slog.Warn("[ValkeyClient] Do Multi failed",
					slog.Int("attempt", i+1),
					slog.String("error", r.Error().Error()))
				if isConnectionError(r.Error()) {
					vc.recreateClient()
				}
				break
			}
		}
		if !hasErr {
			break
		}
		time.Sleep(time.Millisecond * 250)
	}

	return results
}

func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.Client.Do(ctx, completed)
		if result.Error() == nil || valkey.IsValkeyNil(result.Error()) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
