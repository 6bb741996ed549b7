package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	d := time.Date(2024, time.March, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2024-03-05", DateOf(d))
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		day  time.Time
		want string
	}{
		{time.Date(2024, time.January, 17, 10, 0, 0, 0, time.UTC), "2024-01-14"}, // Wednesday
		{time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC), "2024-01-14"},  // Sunday itself
		{time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC), "2024-01-14"}, // Saturday
		{time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC), "2023-12-31"},   // crosses the year
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StartOfWeek(tc.day), "for %s", tc.day)
	}
}

func TestStartOfMonth(t *testing.T) {
	cases := []struct {
		day  time.Time
		want string
	}{
		{time.Date(2024, time.January, 17, 10, 0, 0, 0, time.UTC), "2024-01-01"},
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), "2024-01-01"},
		{time.Date(2024, time.February, 29, 18, 0, 0, 0, time.UTC), "2024-02-01"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StartOfMonth(tc.day), "for %s", tc.day)
	}
}
