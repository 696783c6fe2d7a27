package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/database"
	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultSessionTTL is the hard expiry window for new sessions.
// Sessions are not renewed on use.
const DefaultSessionTTL = 24 * time.Hour

// Service owns the session lifecycle and credential checks. Sessions
// live in the record store's sessions collection and are rewritten
// wholesale on every mutation.
type Service struct {
	store *database.Store
	ttl   time.Duration
	now   func() time.Time
}

// NewService creates a new auth service. A non-positive ttl falls back
// to DefaultSessionTTL.
func NewService(store *database.Store, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// SessionTTL returns the configured expiry window
func (s *Service) SessionTTL() time.Duration {
	return s.ttl
}

// Login verifies admin credentials and creates a session. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(username, password string) (string, error) {
	admins, err := s.store.Admins()
	if err != nil {
		return "", fmt.Errorf("load admins: %w", err)
	}

	for _, a := range admins {
		if a.Username != username {
			continue
		}
		if !VerifyPassword(password, a.PasswordHash) {
			break
		}
		return s.CreateSession(username)
	}
	return "", ErrInvalidCredentials
}

// CreateSession generates a cryptographically random token, evicts all
// currently-expired sessions, appends the new one and persists the
// collection. The plain token is returned once and never stored.
func (s *Service) CreateSession(username string) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)

	sessions, err := s.store.Sessions()
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}

	now := s.now()
	kept := sessions[:0]
	for _, sess := range sessions {
		if sess.Active(now) {
			kept = append(kept, sess)
		}
	}

	kept = append(kept, models.Session{
		TokenHash: hashToken(token),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	})
	if err := s.store.WriteSessions(kept); err != nil {
		return "", fmt.Errorf("persist sessions: %w", err)
	}
	return token, nil
}

// ValidateSession resolves a token to its session. An expired session,
// an unknown token and an unreadable store all report absent; the
// caller cannot tell them apart.
func (s *Service) ValidateSession(token string) (*models.Session, bool) {
	if token == "" {
		return nil, false
	}
	sessions, err := s.store.Sessions()
	if err != nil {
		// Fail closed: an unreadable store means no valid session.
		return nil, false
	}

	hash := hashToken(token)
	now := s.now()
	for i := range sessions {
		if sessions[i].TokenHash == hash && sessions[i].Active(now) {
			return &sessions[i], true
		}
	}
	return nil, false
}

// DeleteSession removes any session matching the token. Deleting an
// unknown token is a no-op.
func (s *Service) DeleteSession(token string) error {
	sessions, err := s.store.Sessions()
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	hash := hashToken(token)
	kept := sessions[:0]
	removed := false
	for _, sess := range sessions {
		if sess.TokenHash == hash {
			removed = true
			continue
		}
		kept = append(kept, sess)
	}
	if !removed {
		return nil
	}
	if err := s.store.WriteSessions(kept); err != nil {
		return fmt.Errorf("persist sessions: %w", err)
	}
	return nil
}

// hashToken creates a SHA-256 hash of the token
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
