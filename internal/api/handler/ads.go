package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
	"github.com/vfg2006/ad-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ad-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ad-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListAds retorna os cards do snapshot atual filtrados por ?search= e ordenados por ?sort=asc|desc
func ListAds(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := domain.AdQuery{
			Search: r.URL.Query().Get("search"),
			Sort:   domain.SortMode(r.URL.Query().Get("sort")),
		}

		response, err := service.ListAds(query)
		if err != nil {
			logger.WithFields(log.Fields{
				"search": query.Search,
				"sort":   query.Sort,
				"error":  err.Error(),
			}).Warn("ads: failed to list ads")

			switch {
			case errors.Is(err, dashboarding.ErrInvalidSortMode):
				apiErrors.WriteError(w, apiErrors.ErrInvalidSortMode, err.Error(), nil)
			case errors.Is(err, dashboarding.ErrNoSnapshot):
				apiErrors.WriteError(w, apiErrors.ErrDatasetNotLoaded, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"snapshot_id": response.SnapshotID,
			"count":       response.Count,
			"total":       response.Total,
		}).Debug("ads: listing ads")

		writeJSON(w, logger, http.StatusOK, response)
	})
}

// RefreshAds busca o feed e atualiza o snapshot de forma síncrona
func RefreshAds(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.Refresh(r.Context())
		if err != nil {
			logger.WithError(err).Error("ads: failed to refresh ads")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao atualizar anúncios", err.Error())
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"snapshot_id": snapshot.ID,
			"fetched_at":  snapshot.FetchedAt,
			"ads":         len(snapshot.Ads),
		})
	})
}

// StandardizeAds padroniza um payload enviado no corpo da requisição
func StandardizeAds(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var payload domain.AdDataset
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("ads: invalid dataset payload")

			if errors.Is(err, io.EOF) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Corpo da requisição vazio", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload inválido", err.Error())
			return
		}

		response, err := service.Standardize(&payload)
		if err != nil {
			logger.WithError(err).Error("ads: failed to standardize payload")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, response)
	})
}

func GetAdsStatus(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, service.GetStatus())
	})
}

// writeJSON serializa o corpo antes de escrever o status, para que uma falha
// de serialização vire um erro 500 e não uma resposta truncada
func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logger.WithError(err).Error("failed to encode response")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao serializar a resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.WithError(err).Warn("failed to write response")
	}
}
