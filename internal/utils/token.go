package utils

import (
	"context"      // Context for Redis operations
	"crypto/rand"  // Random token bytes
	"encoding/hex" // Token encoding
	"errors"       // Sentinel error
	"strconv"      // User ID conversion

	"github.com/redis/go-redis/v9" // Redis client
)

// ErrTokenNotFound is returned when a presented token has no stored association
var ErrTokenNotFound = errors.New("token not found")

// NewToken mints a new opaque bearer token (32 random bytes, hex encoded)
func NewToken() (string, error) {
	buf := make([]byte, 32) // Token entropy
	if _, err := rand.Read(buf); err != nil {
		return "", err // Return error if the random source fails
	}
	return hex.EncodeToString(buf), nil // Hex-encode for transport
}

// tokenKey builds the Redis key holding a token's association
func tokenKey(token string) string {
	return "token:" + token
}

// StoreToken persists the token -> user association with its device label.
// Tokens do not expire, so no TTL is set.
func StoreToken(ctx context.Context, rdb *redis.Client, token string, userID uint, device string) error {
	return rdb.HSet(ctx, tokenKey(token), "user_id", strconv.Itoa(int(userID)), "device", device).Err()
}

// LookupToken resolves a token to the owning user ID
func LookupToken(ctx context.Context, rdb *redis.Client, token string) (uint, error) {
	val, err := rdb.HGet(ctx, tokenKey(token), "user_id").Result() // Fetch the stored user ID
	if err == redis.Nil {
		return 0, ErrTokenNotFound // Unknown token
	} else if err != nil {
		return 0, err // Other Redis error
	}
	id, err := strconv.Atoi(val) // Parse the stored user ID
	if err != nil {
		return 0, ErrTokenNotFound // Stored value is unusable, treat as unknown
	}
	return uint(id), nil
}
