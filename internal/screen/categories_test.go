package screen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	repoMocks "github.com/donaldgifford/mercado-search/internal/repository/mocks"
	"github.com/donaldgifford/mercado-search/internal/screen"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

func TestCategoriesController(t *testing.T) {
	t.Parallel()

	cats := []domain.Category{
		{ID: "MLA5725", Name: "Accesorios para Vehículos"},
		{ID: "MLA1051", Name: "Celulares y Teléfonos"},
	}

	tests := []struct {
		name      string
		opts      []screen.Option
		setupMock func(m *repoMocks.MockRepository)
		check     func(t *testing.T, s screen.CategoriesState)
	}{
		{
			name: "fetches on construction",
			setupMock: func(m *repoMocks.MockRepository) {
				m.EXPECT().Categories(mock.Anything, "MLA").Return(cats, nil).Once()
			},
			check: func(t *testing.T, s screen.CategoriesState) {
				t.Helper()
				assert.False(t, s.Loading)
				assert.Nil(t, s.Err)
				assert.Equal(t, cats, s.Categories)
			},
		},
		{
			name: "failure sets error",
			setupMock: func(m *repoMocks.MockRepository) {
				m.EXPECT().
					Categories(mock.Anything, "MLA").
					Return(nil, domain.RequestFailed("no network")).
					Once()
			},
			check: func(t *testing.T, s screen.CategoriesState) {
				t.Helper()
				assert.False(t, s.Loading)
				require.NotNil(t, s.Err)
				assert.Equal(t, "no network", s.Err.Message)
				assert.Empty(t, s.Categories)
			},
		},
		{
			name: "configured site",
			opts: []screen.Option{screen.WithSiteID("MLM")},
			setupMock: func(m *repoMocks.MockRepository) {
				m.EXPECT().Categories(mock.Anything, "MLM").Return(cats[:1], nil).Once()
			},
			check: func(t *testing.T, s screen.CategoriesState) {
				t.Helper()
				assert.Len(t, s.Categories, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := repoMocks.NewMockRepository(t)
			tt.setupMock(repo)

			c := screen.NewCategoriesController(repo, tt.opts...)
			defer c.Close()
			waitReady(t, c.Ready())

			tt.check(t, c.Snapshot())
		})
	}
}

func TestCategoriesController_RefetchAfterFailure(t *testing.T) {
	t.Parallel()

	repo := repoMocks.NewMockRepository(t)
	repo.EXPECT().
		Categories(mock.Anything, "MLA").
		Return(nil, domain.RequestFailed("no network")).
		Once()
	repo.EXPECT().
		Categories(mock.Anything, "MLA").
		Return([]domain.Category{{ID: "MLA1051", Name: "Celulares"}}, nil).
		Once()

	c := screen.NewCategoriesController(repo)
	defer c.Close()
	waitReady(t, c.Ready())
	require.NotNil(t, c.Snapshot().Err)

	c.Fetch()
	s := c.Snapshot()
	assert.Nil(t, s.Err)
	assert.Len(t, s.Categories, 1)
}

func TestCategoriesController_LoadingPublished(t *testing.T) {
	t.Parallel()

	repo := repoMocks.NewMockRepository(t)
	release := make(chan struct{})
	repo.EXPECT().
		Categories(mock.Anything, "MLA").
		RunAndReturn(func(context.Context, string) ([]domain.Category, error) {
			<-release
			return nil, nil
		}).
		Once()

	c := screen.NewCategoriesController(repo)
	defer c.Close()

	updates, cancel := c.Subscribe()
	defer cancel()

	// The first value is the current state; wait for loading to show.
	for s := range updates {
		if s.Loading {
			break
		}
	}
	close(release)

	for s := range updates {
		if !s.Loading {
			assert.Nil(t, s.Err)
			break
		}
	}
}

func TestCategoriesController_CloseCancelsFetch(t *testing.T) {
	t.Parallel()

	repo := repoMocks.NewMockRepository(t)
	started := make(chan struct{})
	repo.EXPECT().
		Categories(mock.Anything, "MLA").
		RunAndReturn(func(ctx context.Context, _ string) ([]domain.Category, error) {
			close(started)
			<-ctx.Done()
			return nil, domain.RequestFailed(ctx.Err().Error())
		}).
		Once()

	c := screen.NewCategoriesController(repo)
	<-started
	c.Close()

	s := c.Snapshot()
	assert.Nil(t, s.Err)
	assert.True(t, s.Loading, "cancelled fetch publishes nothing")

	c.Fetch()
}
