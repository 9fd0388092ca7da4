package datasetclient

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrUnexpectedStatus = errors.New("feed de anúncios respondeu com status inesperado")
	ErrMalformedPayload = errors.New("payload do feed de anúncios inválido")
)

// FetchDataset busca o payload completo do feed. A decodificação só termina
// depois que o corpo inteiro foi lido, então quem chama nunca recebe um
// dataset parcial.
func (c *DatasetClient) FetchDataset(ctx context.Context) (*domain.AdDataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Dataset.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrapf(ErrUnexpectedStatus, "status: %s", resp.Status)
	}

	var dataset domain.AdDataset
	if err := json.NewDecoder(io.LimitReader(resp.Body, c.maxBodyBytes)).Decode(&dataset); err != nil {
		return nil, errors.Wrapf(ErrMalformedPayload, "erro ao decodificar a resposta: %v", err)
	}

	return &dataset, nil
}
