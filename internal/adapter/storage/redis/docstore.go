package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"agentpay/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// casScript performs the versioned write atomically: the document is a
// hash of {data, version}. ARGV[1] = data, ARGV[2] = expected version
// (0 = must not exist). Returns the new version, or -1 on conflict.
var casScript = goredis.NewScript(`
local v = redis.call('HGET', KEYS[1], 'version')
local expected = tonumber(ARGV[2])
if not v then
  if expected ~= 0 then return -1 end
  redis.call('HSET', KEYS[1], 'data', ARGV[1], 'version', 1)
  return 1
end
if tonumber(v) ~= expected then return -1 end
local nv = expected + 1
redis.call('HSET', KEYS[1], 'data', ARGV[1], 'version', nv)
return nv
`)

// DocStore implements ports.DocumentStore on Redis hashes with a Lua
// compare-and-swap for the version token.
type DocStore struct {
	client *goredis.Client
	prefix string
}

// NewDocStore creates a Redis-backed document store.
func NewDocStore(client *goredis.Client) *DocStore {
	return &DocStore{client: client, prefix: "doc:"}
}

func (s *DocStore) docKey(collection, key string) string {
	return s.prefix + collection + ":" + key
}

// Get returns the document, or (nil, nil) when absent.
func (s *DocStore) Get(ctx context.Context, collection, key string) (*ports.Document, error) {
	vals, err := s.client.HMGet(ctx, s.docKey(collection, key), "data", "version").Result()
	if err != nil {
		return nil, fmt.Errorf("redis get document: %w", err)
	}
	if vals[0] == nil || vals[1] == nil {
		return nil, nil
	}

	data, ok := vals[0].(string)
	if !ok {
		return nil, fmt.Errorf("redis document %s/%s: unexpected data type", collection, key)
	}
	version, err := strconv.ParseInt(vals[1].(string), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("redis document %s/%s: parse version: %w", collection, key, err)
	}
	return &ports.Document{Data: []byte(data), Version: version}, nil
}

// Put writes data guarded by the expected version.
func (s *DocStore) Put(ctx context.Context, collection, key string, data []byte, expectedVersion int64) (int64, error) {
	res, err := casScript.Run(ctx, s.client, []string{s.docKey(collection, key)}, data, expectedVersion).Int64()
	if err != nil {
		return 0, fmt.Errorf("redis put document: %w", err)
	}
	if res < 0 {
		return 0, ports.ErrVersionConflict
	}
	return res, nil
}

// List scans the collection prefix and loads every document.
func (s *DocStore) List(ctx context.Context, collection string) (map[string]ports.Document, error) {
	out := make(map[string]ports.Document)
	pattern := s.prefix + collection + ":*"
	keyPrefix := s.prefix + collection + ":"

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan %s: %w", collection, err)
		}
		for _, k := range keys {
			id := strings.TrimPrefix(k, keyPrefix)
			doc, err := s.Get(ctx, collection, id)
			if err != nil {
				return nil, err
			}
			if doc != nil {
				out[id] = *doc
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return out, nil
}
