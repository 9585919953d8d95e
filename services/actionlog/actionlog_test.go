package actionlog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizcore/models"
)

func TestInMemoryRecorder_Append(t *testing.T) {
	recorder := NewInMemoryRecorder()

	entry := recorder.Append("create_task", models.ActionOutcomeSuccess)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "create_task", entry.ActionName)
	assert.Equal(t, models.ActionOutcomeSuccess, entry.Outcome)
	assert.False(t, entry.Timestamp.IsZero())

	entries := recorder.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestInMemoryRecorder_EntriesReturnsCopy(t *testing.T) {
	recorder := NewInMemoryRecorder()
	recorder.Append("trigger_report", models.ActionOutcomeFailed)

	entries := recorder.Entries()
	entries[0].ActionName = "tampered"

	fresh := recorder.Entries()
	assert.Equal(t, "trigger_report", fresh[0].ActionName, "log entries are immutable after creation")
}

func TestInMemoryRecorder_ConcurrentAppends(t *testing.T) {
	recorder := NewInMemoryRecorder()

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			recorder.Append(fmt.Sprintf("action-%d", i), models.ActionOutcomeSuccess)
		}(i)
	}
	wg.Wait()

	entries := recorder.Entries()
	require.Len(t, entries, n, "no lost or duplicated appends")

	seen := make(map[string]bool, n)
	for _, entry := range entries {
		assert.False(t, seen[entry.ID], "entry IDs are unique")
		seen[entry.ID] = true
	}
}
