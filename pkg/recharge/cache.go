package recharge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// Static errors for err113 compliance.
var (
	ErrCacheKeyNotFound   = errors.New("key not found")
	ErrCacheEntryExpired  = errors.New("entry expired")
	ErrCacheDisabled      = errors.New("cache disabled")
	ErrNATSConfigRequired = errors.New("NATS configuration required for NATS cache")
	ErrNATSURLRequired    = errors.New("NATS URL is required")
)

// DefaultTokenInfoTTL bounds how long introspected scopes are reused.
const DefaultTokenInfoTTL = 15 * time.Minute

// CacheEntry is a cached payload.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the entry is past its expiry. A zero ExpiresAt never expires.
func (e *CacheEntry) Expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// Cache stores token introspection results between client constructions.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// TokenInfoCacheKey returns the cache key for a token. Only a SHA-256
// fingerprint of the token is ever used.
func TokenInfoCacheKey(accessToken string) string {
	sum := sha256.Sum256([]byte(accessToken))

	return "token_information." + hex.EncodeToString(sum[:])
}

// LoadTokenInformation returns the cached token information for accessToken.
func LoadTokenInformation(ctx context.Context, cache Cache, accessToken string) (*TokenInformation, error) {
	entry, err := cache.Get(ctx, TokenInfoCacheKey(accessToken))
	if err != nil {
		return nil, err
	}

	var info TokenInformation

	err = json.Unmarshal(entry.Data, &info)
	if err != nil {
		return nil, fmt.Errorf("decoding cached token information: %w", err)
	}

	return &info, nil
}

// StoreTokenInformation caches info for accessToken for ttl.
func StoreTokenInformation(ctx context.Context, cache Cache, accessToken string, info *TokenInformation, ttl time.Duration) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding token information: %w", err)
	}

	entry := &CacheEntry{Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	return cache.Set(ctx, TokenInfoCacheKey(accessToken), entry)
}

// MemoryCache is an in-process cache bounded by entry count.
type MemoryCache struct {
	mutex   sync.Mutex
	maxSize int
	entries map[string]*CacheEntry
	order   []string
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 100
	}

	return &MemoryCache{
		maxSize: maxSize,
		entries: make(map[string]*CacheEntry),
	}
}

// Get returns the entry for key.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if entry.Expired() {
		c.removeLocked(key)

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return entry, nil
}

// Set stores entry under key, evicting the oldest entry when full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.entries[key]; ok {
		c.removeLocked(key)
	}

	for len(c.order) >= c.maxSize {
		c.removeLocked(c.order[0])
	}

	c.entries[key] = entry
	c.order = append(c.order, key)

	return nil
}

// Delete removes key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.removeLocked(key)

	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]*CacheEntry)
	c.order = nil

	return nil
}

// Len returns the number of stored entries.
func (c *MemoryCache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.entries)
}

func (c *MemoryCache) removeLocked(key string) {
	delete(c.entries, key)

	for i, existing := range c.order {
		if existing == key {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}
}

// NoOpCache is a cache that does nothing.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always returns ErrCacheDisabled.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// NATSKVConfig configures the NATS JetStream key-value cache.
type NATSKVConfig struct {
	URL    string
	Bucket string
	TTL    time.Duration

	// Conn reuses an existing connection instead of dialing URL.
	Conn *nats.Conn
}

// NATSKVCache shares token introspection results between processes through
// a JetStream key-value bucket.
type NATSKVCache struct {
	conn   *nats.Conn
	owned  bool
	kv     nats.KeyValue
	bucket string
}

// NewNATSKVCache connects to NATS and binds the bucket, creating it when missing.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = "recharge_token_information"
	}

	conn := config.Conn
	owned := false

	if conn == nil {
		if config.URL == "" {
			return nil, ErrNATSURLRequired
		}

		var err error

		conn, err = nats.Connect(config.URL, nats.Name("recharge-client"))
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}

		owned = true
	}

	js, err := conn.JetStream()
	if err != nil {
		closeOwned(conn, owned)

		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	kv, err := js.KeyValue(bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket:      bucket,
			Description: "Recharge token information",
			TTL:         config.TTL,
		})
	}

	if err != nil {
		closeOwned(conn, owned)

		return nil, fmt.Errorf("binding key-value bucket %s: %w", bucket, err)
	}

	return &NATSKVCache{conn: conn, owned: owned, kv: kv, bucket: bucket}, nil
}

func closeOwned(conn *nats.Conn, owned bool) {
	if owned {
		conn.Close()
	}
}

// Get returns the entry for key.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	stored, err := c.kv.Get(key)
	if errors.Is(err, nats.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s from bucket %s: %w", key, c.bucket, err)
	}

	var entry CacheEntry

	err = json.Unmarshal(stored.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry %s: %w", key, err)
	}

	if entry.Expired() {
		_ = c.kv.Delete(key)

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return &entry, nil
}

// Set stores entry under key.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(key, data)
	if err != nil {
		return fmt.Errorf("writing %s to bucket %s: %w", key, c.bucket, err)
	}

	return nil
}

// Delete removes key.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(key)
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting %s from bucket %s: %w", key, c.bucket, err)
	}

	return nil
}

// Clear purges every key in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys()
	if errors.Is(err, nats.ErrNoKeysFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("listing bucket %s: %w", c.bucket, err)
	}

	for _, key := range keys {
		err = c.kv.Purge(key)
		if err != nil {
			return fmt.Errorf("purging %s: %w", key, err)
		}
	}

	return nil
}

// Close closes the connection when the cache dialed it.
func (c *NATSKVCache) Close() {
	closeOwned(c.conn, c.owned)
}
