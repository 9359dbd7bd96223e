package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskChannel(t *testing.T) {
	assert.Equal(t, "task:abc-123", TaskChannel("abc-123"))
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("small payload passes through", func(t *testing.T) {
		in := `{"type":"task.progress","task_id":"t1","progress":50}`
		out, err := truncateIfNeeded(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("oversized payload collapses to routing envelope", func(t *testing.T) {
		payload := map[string]any{
			"type":    "task.progress",
			"task_id": "t1",
			"message": strings.Repeat("x", 9000),
		}
		raw, err := json.Marshal(payload)
		require.NoError(t, err)

		out, err := truncateIfNeeded(string(raw))
		require.NoError(t, err)
		assert.Less(t, len(out), 200)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &envelope))
		assert.Equal(t, "task.progress", envelope["type"])
		assert.Equal(t, "t1", envelope["task_id"])
		assert.Equal(t, true, envelope["truncated"])
	})
}
