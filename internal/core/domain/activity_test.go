package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivity_AvailableSpots(t *testing.T) {
	a := &Activity{MaxCapacity: 10, CurrentCapacity: 7}
	assert.Equal(t, 3, a.AvailableSpots())

	a.CurrentCapacity = 10
	assert.Equal(t, 0, a.AvailableSpots())
}

func TestActivity_IsPast(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&Activity{StartsAt: now.Add(-time.Minute)}).IsPast(now))
	assert.False(t, (&Activity{StartsAt: now.Add(time.Minute)}).IsPast(now))
}

func TestItemType_Valid(t *testing.T) {
	assert.True(t, ItemTypeProduct.Valid())
	assert.True(t, ItemTypeActivity.Valid())
	assert.False(t, ItemType("event").Valid())
	assert.False(t, ItemType("").Valid())
}
