package security

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"agritech/plantcare-api/model"

	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// CookieName is the cookie the session token travels in.
const CookieName = "session_token"

const tokenBytes = 32

// State is the result of resolving a token. Anonymous means the token
// was missing, unknown or expired.
type State struct {
	Authenticated bool
	UserID        string
}

// Sessions is the server-side session store. The client only ever
// holds the opaque token; everything else lives in the sessions table.
type Sessions struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewSessions(db *gorm.DB) *Sessions {
	ttl := time.Duration(viper.GetInt("session.ttl_hours")) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Sessions{db: db, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Create issues a fresh unguessable token bound to userID. The row is
// committed before Create returns, so a redirect sent right after
// always observes the new session.
func (s *Sessions) Create(userID string) (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(b)

	now := time.Now()
	err := s.db.Create(&model.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl).Unix(),
		CreatedAt: now.Unix(),
	}).Error
	if err != nil {
		return "", err
	}

	return token, nil
}

// Resolve looks a token up. Unknown and expired tokens are not errors,
// they just resolve to the anonymous state.
func (s *Sessions) Resolve(token string) (State, error) {
	if token == "" {
		return State{}, nil
	}

	var sess model.Session
	err := s.db.Where("token = ?", token).First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return State{}, nil
		}
		return State{}, err
	}

	if time.Now().Unix() >= sess.ExpiresAt {
		// Lazy cleanup, a failure here doesn't matter
		s.db.Where("token = ?", token).Delete(&model.Session{})
		return State{}, nil
	}

	return State{Authenticated: true, UserID: sess.UserID}, nil
}

// Destroy removes a session. Destroying a token that doesn't exist is
// a no-op; an error only means the store itself failed.
func (s *Sessions) Destroy(token string) error {
	return s.db.Where("token = ?", token).Delete(&model.Session{}).Error
}
