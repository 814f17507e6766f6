package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/timetrack/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestScopeKey(t *testing.T) {
	uid := uuid.New()
	assert.Equal(t, "anonymous", entity.AnonymousScope().Key())
	assert.Equal(t, "user:"+uid.String(), entity.UserScope(uid).Key())
	assert.True(t, entity.Scope{}.IsAnonymous())
}

func TestElapsedSeconds(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 90, entity.ElapsedSeconds(start, start.Add(90*time.Second+900*time.Millisecond)))
	assert.Equal(t, 0, entity.ElapsedSeconds(start, start))
	assert.Equal(t, 0, entity.ElapsedSeconds(start, start.Add(-time.Minute)))
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+5:30", 5*3600+1800)
	ts := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), entity.Day(ts, loc))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), entity.Day(ts, time.UTC))
}
