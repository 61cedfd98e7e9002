package normalize

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"github.com/dasdy/kle2kmk/db"
	"github.com/dasdy/kle2kmk/logging"
	"github.com/dasdy/kle2kmk/model"
)

// CachedNormalizer remembers results of Inner by document digest. Cache errors are
// logged and otherwise ignored.
type CachedNormalizer struct {
	Inner   Normalizer
	Storage db.Storage
}

func NewCachedNormalizer(inner Normalizer, storage db.Storage) *CachedNormalizer {
	return &CachedNormalizer{Inner: inner, Storage: storage}
}

// Digest is the cache key of a raw document.
func Digest(document []byte) string {
	sum := sha256.Sum256(document)

	return hex.EncodeToString(sum[:])
}

func (c *CachedNormalizer) Normalize(ctx context.Context, document []byte) ([]model.PhysicalKey, error) {
	ctx = logging.AppendCtx(ctx, slog.String(logging.PackageName, "cache"))
	digest := Digest(document)

	if keys, ok := c.lookup(ctx, digest); ok {
		slog.DebugContext(ctx, "Using cached normalization", "digest", digest, "keys", len(keys))

		return keys, nil
	}

	keys, err := c.Inner.Normalize(ctx, document)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(keys)
	if err != nil {
		slog.WarnContext(ctx, "Could not encode normalization for cache", "error", err)

		return keys, nil
	}

	if err := c.Storage.Put(digest, payload); err != nil {
		slog.WarnContext(ctx, "Could not cache normalization", "digest", digest, "error", err)
	}

	return keys, nil
}

func (c *CachedNormalizer) lookup(ctx context.Context, digest string) ([]model.PhysicalKey, bool) {
	payload, ok, err := c.Storage.Get(digest)
	if err != nil {
		slog.WarnContext(ctx, "Could not read normalization cache", "digest", digest, "error", err)

		return nil, false
	}

	if !ok {
		return nil, false
	}

	var keys []model.PhysicalKey
	if err := json.Unmarshal(payload, &keys); err != nil {
		slog.WarnContext(ctx, "Dropping unreadable cache entry", "digest", digest, "error", err)

		return nil, false
	}

	return keys, true
}
