package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	operations []string
}

func (o *recordingObserver) ObserveHash(operation string, _ time.Duration) {
	o.operations = append(o.operations, operation)
}

func TestInstrumentedHasher(t *testing.T) {
	observer := &recordingObserver{}
	hasher := NewInstrumentedHasher(newTestHasher(t), observer)

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	assert.True(t, hasher.Check("123456", hash))
	assert.False(t, hasher.NeedsRehash(hash))

	assert.Equal(t, []string{"hash", "check"}, observer.operations)
}
