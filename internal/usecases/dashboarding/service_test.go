package dashboarding

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-dashboard-api/infrastructure/integrator/dataset/mocks"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
	"github.com/vfg2006/ad-dashboard-api/internal/metrics"
	"github.com/vfg2006/ad-dashboard-api/internal/usecases/standardizing"
	"go.uber.org/mock/gomock"
)

func testDataset() *domain.AdDataset {
	return &domain.AdDataset{
		GoogleAnalytics: []domain.RawRecord{
			{"utm_campaign": "Summer Sale", "utm_medium": "AS1", "utm_content": "CR1", "results": 42.0},
		},
		FacebookAds: []domain.RawRecord{
			{"campaign_name": "Summer Sale", "media_buy_name": "AS1", "ad_name": "CR1", "spend": 30.0, "impressions": 300.0, "clicks": 3.0},
		},
		TwitterAds: []domain.RawRecord{
			{"campaign": "Winter Promo", "ad_group": "AS2", "image_name": "CR2", "spend": 10.0, "impressions": 100.0, "post_clicks": 1.0},
		},
		SnapchatAds: []domain.RawRecord{
			{"campaign_name": "summer clearance", "ad_squad_name": "AS3", "creative_name": "CR3", "cost": 20.0, "impressions": 200.0, "post_clicks": 2.0},
		},
	}
}

func newTestService(t *testing.T) (*Service, *mocks.MockDatasetIntegrator, *metrics.Metrics) {
	t.Helper()

	ctrl := gomock.NewController(t)
	datasetService := mocks.NewMockDatasetIntegrator(ctrl)

	logger, _ := test.NewNullLogger()
	m := metrics.New("test")

	return NewService(datasetService, standardizing.NewService(logger, m), m), datasetService, m
}

func TestService_Refresh(t *testing.T) {
	service, datasetService, m := newTestService(t)

	datasetService.EXPECT().
		GetDataset(gomock.Any()).
		Return(testDataset(), nil)

	snapshot, err := service.Refresh(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, snapshot.ID)
	assert.False(t, snapshot.FetchedAt.IsZero())
	require.Len(t, snapshot.Ads, 3)
	assert.Equal(t, 42.0, snapshot.Ads[0].Results)
	assert.Equal(t, "Winter Promo", snapshot.Ads[1].Campaign)
	assert.Equal(t, "summer clearance", snapshot.Ads[2].Campaign)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatasetRefreshes.WithLabelValues(metrics.StatusSuccess)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.StandardizedAds))
}

func TestService_Refresh_KeepsPreviousSnapshotOnError(t *testing.T) {
	service, datasetService, m := newTestService(t)

	gomock.InOrder(
		datasetService.EXPECT().GetDataset(gomock.Any()).Return(testDataset(), nil),
		datasetService.EXPECT().GetDataset(gomock.Any()).Return(nil, assert.AnError),
	)

	first, err := service.Refresh(context.Background())
	require.NoError(t, err)

	second, err := service.Refresh(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, second)

	list, err := service.ListAds(domain.AdQuery{})
	require.NoError(t, err)
	assert.Equal(t, first.ID, list.SnapshotID)
	assert.Equal(t, 3, list.Total)

	status := service.GetStatus()
	assert.Equal(t, 1, status["refresh_count"])
	assert.Equal(t, 1, status["failed_refresh_count"])
	assert.Contains(t, status["last_refresh_error"], assert.AnError.Error())
	assert.Equal(t, first.ID, status["snapshot_id"])

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatasetRefreshes.WithLabelValues(metrics.StatusError)))
}

func TestService_Refresh_Serialized(t *testing.T) {
	service, datasetService, _ := newTestService(t)

	older := testDataset()
	newer := testDataset()
	newer.FacebookAds = nil

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	gomock.InOrder(
		datasetService.EXPECT().GetDataset(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.AdDataset, error) {
			close(firstStarted)
			<-releaseFirst
			return older, nil
		}),
		datasetService.EXPECT().GetDataset(gomock.Any()).Return(newer, nil),
	)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, err := service.Refresh(context.Background())
		assert.NoError(t, err)
	}()

	<-firstStarted

	secondDone := make(chan struct{})
	go func() {
		defer wg.Done()
		defer close(secondDone)
		_, err := service.Refresh(context.Background())
		assert.NoError(t, err)
	}()

	select {
	case <-secondDone:
		t.Fatal("segundo refresh terminou antes do primeiro")
	case <-time.After(50 * time.Millisecond):
	}

	close(releaseFirst)
	wg.Wait()

	response, err := service.ListAds(domain.AdQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, response.Total)
}

func TestService_ListAds_BeforeFirstRefresh(t *testing.T) {
	service, _, _ := newTestService(t)

	list, err := service.ListAds(domain.AdQuery{})

	assert.ErrorIs(t, err, ErrNoSnapshot)
	assert.Nil(t, list)
	assert.Equal(t, 0, service.GetStatus()["ads"])
}

func TestService_ListAds(t *testing.T) {
	service, datasetService, _ := newTestService(t)

	datasetService.EXPECT().GetDataset(gomock.Any()).Return(testDataset(), nil)
	_, err := service.Refresh(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name      string
		query     domain.AdQuery
		expected  []string
		expectErr error
	}{
		{
			name:     "Sem filtros mantém a ordem das plataformas",
			query:    domain.AdQuery{},
			expected: []string{"Summer Sale|AS1|CR1|0", "Winter Promo|AS2|CR2|1", "summer clearance|AS3|CR3|2"},
		},
		{
			name:     "Busca e ordenação crescente",
			query:    domain.AdQuery{Search: "summer", Sort: domain.SortAsc},
			expected: []string{"summer clearance|AS3|CR3|0", "Summer Sale|AS1|CR1|1"},
		},
		{
			name:     "Ordenação decrescente",
			query:    domain.AdQuery{Sort: domain.SortDesc},
			expected: []string{"Summer Sale|AS1|CR1|0", "summer clearance|AS3|CR3|1", "Winter Promo|AS2|CR2|2"},
		},
		{
			name:     "Busca sem resultado",
			query:    domain.AdQuery{Search: "tiktok"},
			expected: []string{},
		},
		{
			name:      "Ordenação inválida",
			query:     domain.AdQuery{Sort: "random"},
			expectErr: ErrInvalidSortMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := service.ListAds(tt.query)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}

			require.NoError(t, err)
			keys := make([]string, 0, len(list.Ads))
			for _, card := range list.Ads {
				keys = append(keys, card.Key)
			}
			assert.Equal(t, tt.expected, keys)
			assert.Equal(t, 3, list.Total)
			assert.Equal(t, len(tt.expected), list.Count)
		})
	}
}

func TestService_Standardize(t *testing.T) {
	service, _, _ := newTestService(t)

	response, err := service.Standardize(testDataset())
	require.NoError(t, err)
	assert.Equal(t, 3, response.Count)
	assert.Len(t, response.Ads, 3)

	_, err = service.Standardize(nil)
	assert.ErrorIs(t, err, standardizing.ErrNilDataset)
}
