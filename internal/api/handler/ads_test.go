package handler

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
	"github.com/vfg2006/ad-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ad-dashboard-api/internal/usecases/standardizing"
	"github.com/vfg2006/ad-dashboard-api/pkg/apiErrors"
)

type fakeDashboard struct {
	snapshot   *domain.AdSnapshot
	refreshErr error
}

func (f *fakeDashboard) Refresh(ctx context.Context) (*domain.AdSnapshot, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	f.snapshot = &domain.AdSnapshot{
		ID:        "abc123",
		FetchedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Ads: []domain.CanonicalAd{
			{Campaign: "Summer Sale", Adset: "AS1", Creative: "CR1", Spend: 30},
			{Campaign: "Winter Promo", Adset: "AS2", Creative: "CR2", Spend: 10},
		},
	}
	return f.snapshot, nil
}

func (f *fakeDashboard) ListAds(query domain.AdQuery) (*domain.AdListResponse, error) {
	if !query.Sort.IsValid() {
		return nil, dashboarding.ErrInvalidSortMode
	}
	if f.snapshot == nil {
		return nil, dashboarding.ErrNoSnapshot
	}

	sorted, err := dashboarding.SortBySpend(dashboarding.FilterByCampaign(f.snapshot.Ads, query.Search), query.Sort)
	if err != nil {
		return nil, err
	}

	return &domain.AdListResponse{
		SnapshotID: f.snapshot.ID,
		Total:      len(f.snapshot.Ads),
		Count:      len(sorted),
		Ads:        dashboarding.BuildCards(sorted),
	}, nil
}

func (f *fakeDashboard) Standardize(dataset *domain.AdDataset) (*domain.StandardizeResponse, error) {
	logger, _ := test.NewNullLogger()
	ads, err := standardizing.NewService(logger, nil).Standardize(dataset)
	if err != nil {
		return nil, err
	}
	return &domain.StandardizeResponse{Count: len(ads), Ads: ads}, nil
}

func (f *fakeDashboard) GetStatus() map[string]any {
	return map[string]any{"ads": 0}
}

func newTestRouter(service dashboarding.Dashboard) router.Router {
	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Ads(service)...),
	)
}

func serve(t *testing.T, rt router.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func TestListAds(t *testing.T) {
	dashboard := &fakeDashboard{}
	rt := newTestRouter(dashboard)

	rec := serve(t, rt, http.MethodGet, "/v1/ads", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrDatasetNotLoaded)

	_, err := dashboard.Refresh(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name         string
		target       string
		expectedCode int
		expectedKeys []string
	}{
		{
			name:         "Sem parâmetros",
			target:       "/v1/ads",
			expectedCode: http.StatusOK,
			expectedKeys: []string{"Summer Sale|AS1|CR1|0", "Winter Promo|AS2|CR2|1"},
		},
		{
			name:         "Ordenação crescente",
			target:       "/v1/ads?sort=asc",
			expectedCode: http.StatusOK,
			expectedKeys: []string{"Winter Promo|AS2|CR2|0", "Summer Sale|AS1|CR1|1"},
		},
		{
			name:         "Busca sem diferenciar maiúsculas",
			target:       "/v1/ads?search=WINTER",
			expectedCode: http.StatusOK,
			expectedKeys: []string{"Winter Promo|AS2|CR2|0"},
		},
		{
			name:         "Busca sem resultado",
			target:       "/v1/ads?search=nada",
			expectedCode: http.StatusOK,
			expectedKeys: []string{},
		},
		{
			name:         "Ordenação inválida",
			target:       "/v1/ads?sort=up",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, rt, http.MethodGet, tt.target, "")
			require.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode != http.StatusOK {
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidSortMode)
				return
			}

			var response domain.AdListResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

			keys := make([]string, 0, len(response.Ads))
			for _, card := range response.Ads {
				keys = append(keys, card.Key)
			}
			assert.Equal(t, tt.expectedKeys, keys)
			assert.Equal(t, "abc123", response.SnapshotID)
		})
	}
}

func TestListAds_UnencodableResponse(t *testing.T) {
	dashboard := &fakeDashboard{
		snapshot: &domain.AdSnapshot{
			ID: "nan123",
			Ads: []domain.CanonicalAd{
				{Campaign: "C1", Adset: "AS1", Creative: "CR1", Spend: math.NaN()},
			},
		},
	}

	rec := serve(t, newTestRouter(dashboard), http.MethodGet, "/v1/ads", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
	assert.NotContains(t, rec.Body.String(), "nan123")
}

func TestRefreshAds(t *testing.T) {
	t.Run("Sucesso", func(t *testing.T) {
		rec := serve(t, newTestRouter(&fakeDashboard{}), http.MethodPost, "/v1/ads/refresh", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"snapshot_id":"abc123"`)
		assert.Contains(t, rec.Body.String(), `"ads":2`)
	})

	t.Run("Falha no feed", func(t *testing.T) {
		rec := serve(t, newTestRouter(&fakeDashboard{refreshErr: assert.AnError}), http.MethodPost, "/v1/ads/refresh", "")

		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrExternalService)
	})
}

func TestStandardizeAds(t *testing.T) {
	rt := newTestRouter(&fakeDashboard{})

	tests := []struct {
		name         string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Payload válido",
			body: `{
				"google_analytics": [{"utm_campaign": "C1", "utm_medium": "AS1", "utm_content": "CR1", "results": 42}],
				"facebook_ads": [{"campaign_name": "C1", "media_buy_name": "AS1", "ad_name": "CR1", "spend": 10, "impressions": 100, "clicks": 5}]
			}`,
			expectedCode: http.StatusOK,
			expectedBody: `"results":42`,
		},
		{
			name:         "Payload malformado",
			body:         `{"facebook_ads": [`,
			expectedCode: http.StatusBadRequest,
			expectedBody: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Corpo vazio",
			body:         ``,
			expectedCode: http.StatusBadRequest,
			expectedBody: apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, rt, http.MethodPost, "/v1/ads/standardize", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	rt := newTestRouter(&fakeDashboard{})

	rec := serve(t, rt, http.MethodGet, "/v2/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrNotFound)

	rec = serve(t, rt, http.MethodDelete, "/v1/ads", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrMethodNotAllowed)
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, newTestRouter(&fakeDashboard{}), http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
