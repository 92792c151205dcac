package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/sublease-service/internal/config"
	"github.com/spec-kit/sublease-service/internal/domain"
)

// SessionStoreVerifier resolves tokens against the hosted session store's
// user endpoint. Lookups can optionally be cached in Redis for a short TTL
// to cut per-request round trips.
type SessionStoreVerifier struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewSessionStoreVerifier constructs the remote verifier. cache may be nil.
func NewSessionStoreVerifier(cfg config.SessionConfig, cache *redis.Client, logger *zap.Logger) *SessionStoreVerifier {
	timeout := time.Duration(cfg.VerifyTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SessionStoreVerifier{
		baseURL:  strings.TrimRight(cfg.StoreURL, "/"),
		apiKey:   cfg.StoreAPIKey,
		client:   &http.Client{Timeout: timeout},
		cache:    cache,
		cacheTTL: time.Duration(cfg.IdentityCacheTTLSec) * time.Second,
		logger:   logger,
	}
}

type sessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify exchanges the bearer token for an identity.
func (v *SessionStoreVerifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}

	if identity := v.cachedIdentity(ctx, token); identity != nil {
		return identity, nil
	}

	url := fmt.Sprintf("%s/auth/v1/user", v.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create verify request: %w", err)
	}
	req.Header.Set("apikey", v.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call session store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		v.logger.Debug("session store rejected token", zap.Int("status", resp.StatusCode))
		return nil, ErrInvalidToken
	}

	var user sessionUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode session store response: %w", err)
	}
	if user.ID == "" {
		return nil, ErrInvalidToken
	}

	identity := &domain.Identity{ID: user.ID, Email: user.Email}
	v.storeIdentity(ctx, token, identity)
	return identity, nil
}

func (v *SessionStoreVerifier) cachedIdentity(ctx context.Context, token string) *domain.Identity {
	if v.cache == nil || v.cacheTTL <= 0 {
		return nil
	}
	raw, err := v.cache.Get(ctx, identityCacheKey(token)).Bytes()
	if err != nil {
		return nil
	}
	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil
	}
	return &identity
}

func (v *SessionStoreVerifier) storeIdentity(ctx context.Context, token string, identity *domain.Identity) {
	if v.cache == nil || v.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(identity)
	if err != nil {
		return
	}
	if err := v.cache.Set(ctx, identityCacheKey(token), raw, v.cacheTTL).Err(); err != nil {
		v.logger.Debug("identity cache write failed", zap.Error(err))
	}
}

func identityCacheKey(token string) string {
	return "session:identity:" + token
}
