package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/pocketbase/pocketbase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toggleEvent() *core.RequestEvent {
	collection := core.NewAuthCollection("users")
	record := core.NewRecord(collection)
	record.Id = "user1"

	e := new(core.RequestEvent)
	e.Request = httptest.NewRequest(http.MethodPost, "/api/campus/participation/toggle", nil)
	e.Response = httptest.NewRecorder()
	e.Auth = record
	return e
}

func TestLimitToggles_OverLimitReturns429(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(client, 30, time.Minute)

	mock.ExpectIncr("ratelimit:toggle:user:user1").SetVal(31)

	e := toggleEvent()
	err := limiter.LimitToggles()(e)
	require.NoError(t, err)

	recorder := e.Response.(*httptest.ResponseRecorder)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAntiBot_RejectsCrawlers(t *testing.T) {
	limiter := NewRateLimiter(nil, 30, time.Minute)

	e := new(core.RequestEvent)
	e.Request = httptest.NewRequest(http.MethodGet, "/api/campus/feed", nil)
	e.Request.Header.Set("User-Agent", "Googlebot/2.1")
	e.Response = httptest.NewRecorder()

	err := limiter.AntiBot()(e)
	require.NoError(t, err)

	recorder := e.Response.(*httptest.ResponseRecorder)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestIsSuspiciousUserAgent(t *testing.T) {
	assert.True(t, isSuspiciousUserAgent("Googlebot/2.1"))
	assert.True(t, isSuspiciousUserAgent("my-scraper/1.0"))
	assert.True(t, isSuspiciousUserAgent("SPIDER"))
	assert.False(t, isSuspiciousUserAgent("Mozilla/5.0 (X11; Linux x86_64)"))
	assert.False(t, isSuspiciousUserAgent(""))
}
