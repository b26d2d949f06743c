package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "plain", content: "hi"},
		{name: "empty", content: "", wantErr: true},
		{name: "whitespace only", content: " \n\t", wantErr: true},
		{name: "at limit", content: strings.Repeat("a", MaxContentLength)},
		{name: "multibyte at limit", content: strings.Repeat("й", MaxContentLength)},
		{name: "over limit", content: strings.Repeat("a", MaxContentLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.content)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestPriorityMax(t *testing.T) {
	assert.Equal(t, PriorityUrgent, PriorityLow.Max(PriorityUrgent))
	assert.Equal(t, PriorityHigh, PriorityHigh.Max(PriorityNormal))
	assert.Equal(t, PriorityNormal, Priority("").Max(PriorityLow).Max(PriorityNormal))
}

func TestEntityRef_RefID(t *testing.T) {
	assert.Equal(t, "post:42", EntityRef{Type: "post", ID: "42"}.RefID())
	assert.Equal(t, "", EntityRef{}.RefID())
}

func TestInQuietHours(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2024, 5, 1, h, m, 0, 0, time.UTC)
	}
	minutes := func(v int) *int { return &v }

	overnight := NotificationPreference{QuietHoursStart: minutes(22 * 60), QuietHoursEnd: minutes(7 * 60)}
	assert.True(t, overnight.InQuietHours(at(23, 0)))
	assert.True(t, overnight.InQuietHours(at(3, 30)))
	assert.False(t, overnight.InQuietHours(at(7, 0)))
	assert.False(t, overnight.InQuietHours(at(12, 0)))

	daytime := NotificationPreference{QuietHoursStart: minutes(9 * 60), QuietHoursEnd: minutes(17 * 60)}
	assert.True(t, daytime.InQuietHours(at(9, 0)))
	assert.False(t, daytime.InQuietHours(at(17, 0)))

	assert.False(t, NotificationPreference{}.InQuietHours(at(3, 0)))
	same := NotificationPreference{QuietHoursStart: minutes(60), QuietHoursEnd: minutes(60)}
	assert.False(t, same.InQuietHours(at(1, 0)))
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("22:30")
	require.NoError(t, err)
	assert.Equal(t, 22*60+30, m)
	assert.Equal(t, "22:30", FormatClock(m))

	for _, bad := range []string{"24:00", "12:60", "1230", "ab:cd", "12:5"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestQueuedMessage_Due(t *testing.T) {
	now := time.Now()
	q := QueuedMessage{NextAttemptAt: now}
	assert.True(t, q.Due(now))
	assert.False(t, q.Due(now.Add(-time.Second)))

	q.Processed = true
	assert.False(t, q.Due(now.Add(time.Hour)))
}

func TestPair_Key(t *testing.T) {
	assert.Equal(t, "1>2", Pair{SenderID: 1, RecipientID: 2}.Key())
	assert.NotEqual(t, Pair{SenderID: 1, RecipientID: 2}.Key(), Pair{SenderID: 2, RecipientID: 1}.Key())
	assert.NotEqual(t, Pair{SenderID: 1, RecipientID: 23}.Key(), Pair{SenderID: 12, RecipientID: 3}.Key())
}
