package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repoMocks "github.com/donaldgifford/mercado-search/internal/repository/mocks"
	storeMocks "github.com/donaldgifford/mercado-search/internal/store/mocks"
)

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), repoMocks.NewMockRepository(t))

	sched, err := NewScheduler(eng, 6*time.Hour, quietLogger())
	require.NoError(t, err)

	entries := sched.Entries()
	require.Len(t, entries, 1)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), repoMocks.NewMockRepository(t))

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	assert.False(t, sched.Entries()[0].Next.IsZero())

	ctx := sched.Stop()
	<-ctx.Done()
}
