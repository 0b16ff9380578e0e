package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/allisson/tenantvault/internal/errors"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// expiredKeyRevalidateInterval bounds how long an expired key is served from
// the cache before the store is consulted again for a status change.
const expiredKeyRevalidateInterval = time.Minute

// cachedKey is a complete, immutable cache entry. Entries are stored and
// replaced whole so concurrent readers never observe a partially populated
// key. staleAt is the expiry for fresh keys and a short revalidation
// deadline for keys cached after their expiry passed.
type cachedKey struct {
	material  []byte
	expiresAt time.Time
	staleAt   time.Time
}

// KeyManagerService implements the KeyManager interface.
//
// It owns the in-process key cache and decides which key is active for new
// encryptions. The cache is last-write-wins: concurrent callers racing to
// populate the same key id is safe and idempotent. No lock is held across a
// key store call; concurrent store fetches for the same id are deduplicated
// with singleflight.
//
// Different processes may briefly disagree about the active key after
// generation. That is accepted: key records are append-only, so two
// processes racing ActiveKeyID may each generate a different key, and both
// remain independently decryptable.
type KeyManagerService struct {
	repo      KeyRepository
	keeper    MasterKeeper
	algorithm vaultDomain.Algorithm
	expiry    time.Duration
	logger    *slog.Logger

	cache    sync.Map // key id -> *cachedKey
	activeID atomic.Value
	group    singleflight.Group
}

// NewKeyManagerService creates a new KeyManagerService.
//
// Keys generated by this manager use the given algorithm and expire after
// the given duration. The keeper wraps key material before it reaches the
// repository and unwraps it on the way back.
func NewKeyManagerService(
	repo KeyRepository,
	keeper MasterKeeper,
	algorithm vaultDomain.Algorithm,
	expiry time.Duration,
	logger *slog.Logger,
) *KeyManagerService {
	return &KeyManagerService{
		repo:      repo,
		keeper:    keeper,
		algorithm: algorithm,
		expiry:    expiry,
		logger:    logger,
	}
}

// GenerateKey creates 32 bytes of random key material, wraps it, persists the
// key record, and inserts it into the local cache.
//
// Persistence happens before caching: if the key store write fails, the key
// is not considered generated and no key exists only in memory.
func (m *KeyManagerService) GenerateKey(ctx context.Context, explicitID string) (string, error) {
	now := time.Now().UTC()

	keyID := explicitID
	if keyID == "" {
		var err error
		keyID, err = vaultDomain.NewKeyID(now)
		if err != nil {
			return "", err
		}
	}

	material, err := vaultDomain.NewKeyMaterial()
	if err != nil {
		return "", err
	}

	wrapped, err := m.keeper.Encrypt(ctx, material)
	if err != nil {
		vaultDomain.Zero(material)
		return "", apperrors.Wrap(err, "failed to wrap key material")
	}

	key := &vaultDomain.Key{
		ID:              keyID,
		WrappedMaterial: wrapped,
		Algorithm:       m.algorithm,
		Status:          vaultDomain.KeyStatusActive,
		CreatedAt:       now,
		ExpiresAt:       now.Add(m.expiry),
	}

	if err := m.repo.Create(ctx, key); err != nil {
		vaultDomain.Zero(material)
		return "", err
	}

	m.cache.Store(keyID, &cachedKey{material: material, expiresAt: key.ExpiresAt, staleAt: key.ExpiresAt})
	m.activeID.Store(keyID)

	m.logger.Info("generated encryption key",
		slog.String("key_id", keyID),
		slog.Time("expires_at", key.ExpiresAt),
	)

	return keyID, nil
}

// GetKey resolves a key id to its plaintext material.
//
// The cache is consulted first; on a miss or a stale entry the key store is
// fetched (deduplicated across concurrent callers) and the cache is
// repopulated. A key cached past its expiry is served for a short
// revalidation window, then refetched so that store-side status changes
// (revocation) are noticed. Expired keys still decrypt; only revoked keys
// are refused. Callers receive a private copy of the material: cache
// eviction zeroes entries in place and must never reach bytes already
// handed out.
//
// Returns ErrKeyNotFound when the store has no record for the id,
// ErrKeyUnavailable when the key is revoked or cannot be unwrapped, and
// ErrStoreUnavailable on transient store failures. A store timeout is never
// reported as not-found.
func (m *KeyManagerService) GetKey(ctx context.Context, keyID string) ([]byte, error) {
	now := time.Now().UTC()

	if v, ok := m.cache.Load(keyID); ok {
		entry := v.(*cachedKey)
		if entry.staleAt.After(now) {
			return cloneMaterial(entry.material), nil
		}
	}

	v, err, _ := m.group.Do(keyID, func() (any, error) {
		return m.fetchKey(ctx, keyID)
	})
	if err != nil {
		return nil, err
	}

	return cloneMaterial(v.([]byte)), nil
}

// fetchKey loads a key record from the store, unwraps its material, and
// repopulates the cache. Side-effect-free on the stored data.
func (m *KeyManagerService) fetchKey(ctx context.Context, keyID string) ([]byte, error) {
	key, err := m.repo.Get(ctx, keyID)
	if err != nil {
		return nil, err
	}

	if !key.Usable() {
		return nil, vaultDomain.ErrKeyUnavailable
	}

	material, err := m.keeper.Decrypt(ctx, key.WrappedMaterial)
	if err != nil {
		return nil, apperrors.Wrap(vaultDomain.ErrKeyUnavailable, "failed to unwrap key material")
	}

	now := time.Now().UTC()
	staleAt := key.ExpiresAt
	if !staleAt.After(now) {
		staleAt = now.Add(expiredKeyRevalidateInterval)
	}
	m.cache.Store(keyID, &cachedKey{material: material, expiresAt: key.ExpiresAt, staleAt: staleAt})

	return material, nil
}

// cloneMaterial copies key material out of the shared cache entry.
func cloneMaterial(material []byte) []byte {
	out := make([]byte, len(material))
	copy(out, material)
	return out
}

// ActiveKeyID returns the id of the key to use for new encryptions.
//
// A cached non-expired key id is returned if one exists; otherwise a new key
// is generated. This is the only method that may implicitly create a key.
// Concurrent callers on a cold cache are collapsed into a single generation.
func (m *KeyManagerService) ActiveKeyID(ctx context.Context) (string, error) {
	now := time.Now().UTC()

	if id := m.activeKeyFromCache(now); id != "" {
		return id, nil
	}

	v, err, _ := m.group.Do("__active__", func() (any, error) {
		if id := m.activeKeyFromCache(now); id != "" {
			return id, nil
		}
		return m.GenerateKey(ctx, "")
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// activeKeyFromCache returns a cached non-expired key id, preferring the most
// recently generated key (the one with the latest expiry). Returns "" when
// no cached key is valid.
func (m *KeyManagerService) activeKeyFromCache(now time.Time) string {
	if v := m.activeID.Load(); v != nil {
		id := v.(string)
		if cached, ok := m.cache.Load(id); ok {
			if cached.(*cachedKey).expiresAt.After(now) {
				return id
			}
		}
	}

	var bestID string
	var bestExpiry time.Time
	m.cache.Range(func(k, v any) bool {
		entry := v.(*cachedKey)
		if entry.expiresAt.After(now) && entry.expiresAt.After(bestExpiry) {
			bestID = k.(string)
			bestExpiry = entry.expiresAt
		}
		return true
	})

	if bestID != "" {
		m.activeID.Store(bestID)
	}

	return bestID
}

// RotateKeys marks store-side keys past their expiry as expired and evicts
// them from the local cache.
//
// Rotation does not re-encrypt existing secrets: it only prevents expired
// keys from being chosen for new encryptions. Decryption of old data keeps
// working until a key is explicitly revoked.
func (m *KeyManagerService) RotateKeys(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	count, err := m.repo.RotateExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	evicted := 0
	m.cache.Range(func(k, v any) bool {
		entry := v.(*cachedKey)
		if !entry.expiresAt.After(now) {
			vaultDomain.Zero(entry.material)
			m.cache.Delete(k)
			evicted++
		}
		return true
	})

	m.logger.Info("rotated encryption keys",
		slog.Int("expired_count", count),
		slog.Int("evicted_count", evicted),
	)

	return count, nil
}

// RevokeKey revokes a key in the store and evicts it from the local cache.
// Revocation is irreversible: the key becomes unavailable even for
// decryption.
func (m *KeyManagerService) RevokeKey(ctx context.Context, keyID string) error {
	if err := m.repo.Revoke(ctx, keyID); err != nil {
		return err
	}

	if v, ok := m.cache.LoadAndDelete(keyID); ok {
		vaultDomain.Zero(v.(*cachedKey).material)
	}

	if v := m.activeID.Load(); v != nil && v.(string) == keyID {
		m.activeID.Store("")
	}

	m.logger.Info("revoked encryption key", slog.String("key_id", keyID))

	return nil
}

// Close zeroes all cached key material. Call during shutdown.
func (m *KeyManagerService) Close() {
	m.cache.Range(func(k, v any) bool {
		vaultDomain.Zero(v.(*cachedKey).material)
		m.cache.Delete(k)
		return true
	})
	m.activeID.Store("")
}
