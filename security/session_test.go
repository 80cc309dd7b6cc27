package security

import (
	"path/filepath"
	"testing"
	"time"

	"agritech/plantcare-api/model"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sessions.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Session{}))

	return db
}

func TestSessionLifecycle(t *testing.T) {
	viper.Set("session.ttl_hours", 24)
	s := NewSessions(newTestDB(t))

	token, err := s.Create("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	state, err := s.Resolve(token)
	require.NoError(t, err)
	assert.True(t, state.Authenticated)
	assert.Equal(t, "user-1", state.UserID)

	require.NoError(t, s.Destroy(token))

	state, err = s.Resolve(token)
	require.NoError(t, err)
	assert.False(t, state.Authenticated)
	assert.Empty(t, state.UserID)
}

func TestSessionResolveUnknownToken(t *testing.T) {
	viper.Set("session.ttl_hours", 24)
	s := NewSessions(newTestDB(t))

	state, err := s.Resolve("no-such-token")
	require.NoError(t, err)
	assert.False(t, state.Authenticated)

	state, err = s.Resolve("")
	require.NoError(t, err)
	assert.False(t, state.Authenticated)
}

func TestSessionDestroyUnknownTokenIsNoop(t *testing.T) {
	viper.Set("session.ttl_hours", 24)
	s := NewSessions(newTestDB(t))

	assert.NoError(t, s.Destroy("never-issued"))
}

func TestSessionTokensAreUnique(t *testing.T) {
	viper.Set("session.ttl_hours", 24)
	s := NewSessions(newTestDB(t))

	seen := make(map[string]bool)
	for range 32 {
		token, err := s.Create("user-1")
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestSessionExpiredResolvesAnonymous(t *testing.T) {
	viper.Set("session.ttl_hours", 24)
	db := newTestDB(t)
	s := NewSessions(db)

	require.NoError(t, db.Create(&model.Session{
		Token:     "stale",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		CreatedAt: time.Now().Add(-2 * time.Hour).Unix(),
	}).Error)

	state, err := s.Resolve("stale")
	require.NoError(t, err)
	assert.False(t, state.Authenticated)

	// The stale row should be gone after the resolve
	var count int64
	require.NoError(t, db.Model(&model.Session{}).Where("token = ?", "stale").Count(&count).Error)
	assert.Zero(t, count)
}
