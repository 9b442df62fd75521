package openfarm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"embervale/catalog"
	"embervale/models"
)

const defaultBaseURL = "https://openfarm.cc/api/v1"

// Client talks to the OpenFarm crop database.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	base := os.Getenv("OPENFARM_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type cropDocument struct {
	ID         string                     `json:"id"`
	Attributes catalog.OpenFarmAttributes `json:"attributes"`
}

type searchResponse struct {
	Data []cropDocument `json:"data"`
}

type getResponse struct {
	Data cropDocument `json:"data"`
}

// SearchCrops queries the crop database and normalizes the results.
func (c *Client) SearchCrops(ctx context.Context, query string) ([]models.Plant, error) {
	u := fmt.Sprintf("%s/crops/search?q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crop search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crop search: %s", resp.Status)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("crop search decode: %w", err)
	}

	plants := make([]models.Plant, 0, len(body.Data))
	for _, doc := range body.Data {
		plants = append(plants, catalog.PlantFromOpenFarm(catalog.OpenFarmCrop{
			ID:         doc.ID,
			Attributes: doc.Attributes,
		}))
	}
	return plants, nil
}

// GetCrop fetches one crop by id.
func (c *Client) GetCrop(ctx context.Context, id string) (models.Plant, error) {
	u := fmt.Sprintf("%s/crops/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.Plant{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Plant{}, fmt.Errorf("crop get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Plant{}, fmt.Errorf("crop get: %s", resp.Status)
	}

	var body getResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Plant{}, fmt.Errorf("crop get decode: %w", err)
	}

	return catalog.PlantFromOpenFarm(catalog.OpenFarmCrop{
		ID:         body.Data.ID,
		Attributes: body.Data.Attributes,
	}), nil
}
