package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

func TestTranscriptAppendKeepsOrder(t *testing.T) {
	transcript := NewTranscript()
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	transcript.Append(domain.Message{ID: "1", Timestamp: base})
	transcript.Append(domain.Message{ID: "2", Timestamp: base.Add(time.Second)})

	messages := transcript.Snapshot()
	require.Len(t, messages, 2)
	assert.Equal(t, domain.MessageID("1"), messages[0].ID)
	assert.Equal(t, domain.MessageID("2"), messages[1].ID)
}

func TestTranscriptAppendClampsBackwardsTimestamp(t *testing.T) {
	transcript := NewTranscript()
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	transcript.Append(domain.Message{ID: "1", Timestamp: base})
	transcript.Append(domain.Message{ID: "2", Timestamp: base.Add(-time.Minute)})

	messages := transcript.Snapshot()
	require.Len(t, messages, 2)
	assert.Equal(t, base, messages[1].Timestamp)
	assert.False(t, messages[1].Timestamp.Before(messages[0].Timestamp))
}

func TestTranscriptSnapshotIsACopy(t *testing.T) {
	transcript := NewTranscript()
	transcript.Append(domain.Message{ID: "1", Content: "original"})

	snapshot := transcript.Snapshot()
	snapshot[0].Content = "mutated"

	assert.Equal(t, "original", transcript.Snapshot()[0].Content)
}

func TestTranscriptReplace(t *testing.T) {
	transcript := NewTranscript()
	transcript.Append(domain.Message{ID: "local"})

	transcript.Replace([]domain.Message{{ID: "a"}, {ID: "b"}})

	messages := transcript.Snapshot()
	require.Len(t, messages, 2)
	assert.Equal(t, domain.MessageID("a"), messages[0].ID)
	assert.Equal(t, 2, transcript.Len())
}
