package background

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func notifyProfileIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("profile-%d", i))
	}
	return ids
}

func TestBatchProfileFilters(t *testing.T) {
	assert.Empty(t, batchProfileFilters(nil))
	assert.Empty(t, batchProfileFilters([]string{}))

	batches := batchProfileFilters(notifyProfileIDs(2))
	assert.Len(t, batches, 1)
	assert.Equal(t, []map[string]string{
		{"field": "tag", "key": "profile_id", "relation": "=", "value": "profile-0"},
		{"operator": "OR"},
		{"field": "tag", "key": "profile_id", "relation": "=", "value": "profile-1"},
	}, batches[0])
}

func TestBatchProfileFiltersFullBatch(t *testing.T) {
	// an exact multiple of the batch size must not leave a trailing
	// batch with no tag filters
	batches := batchProfileFilters(notifyProfileIDs(notifyBatchSize))
	assert.Len(t, batches, 1)
	assert.Len(t, batches[0], 2*notifyBatchSize-1)

	batches = batchProfileFilters(notifyProfileIDs(notifyBatchSize + 50))
	assert.Len(t, batches, 2)
	assert.Len(t, batches[0], 2*notifyBatchSize-1)
	assert.Len(t, batches[1], 2*50-1)
}
