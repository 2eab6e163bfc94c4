package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDescription(t *testing.T) {
	tests := []struct {
		gap  time.Duration
		want string
	}{
		{8 * time.Minute, "8 minutes later"},
		{time.Minute, "1 minute later"},
		{45*time.Minute + 59*time.Second, "45 minutes later"},
		{59 * time.Minute, "59 minutes later"},
		{time.Hour, "1 hour later"},
		{2*time.Hour + 50*time.Minute, "2 hours later"},
		{23*time.Hour + 59*time.Minute, "23 hours later"},
		{24 * time.Hour, "1 day later"},
		{3*24*time.Hour + 20*time.Hour, "3 days later"},
		{400 * 24 * time.Hour, "400 days later"},
		{30 * time.Second, "30 seconds later"},
		{time.Second, "1 second later"},
		{500 * time.Millisecond, "moments later"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDescription(tt.gap))
		})
	}
}
