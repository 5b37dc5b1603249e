package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"soulseer-admin/internal/config"
)

type BackendClient interface {
	ProvisionReader(ctx context.Context, req *ProvisionReaderRequest) error
}

// ProvisionReaderRequest mirrors the backend's admin reader-creation body.
// Rates go over the wire as plain floats.
type ProvisionReaderRequest struct {
	ClerkID     string   `json:"clerk_id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
	ChatRate    float64  `json:"chat_rate"`
	CallRate    float64  `json:"call_rate"`
	VideoRate   float64  `json:"video_rate"`
}

type backendClientImpl struct {
	httpClient *http.Client
	apiURL     string
}

func NewBackendClient(backendCfg *config.Backend) BackendClient {
	return &backendClientImpl{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL: backendCfg.ApiURL,
	}
}

// ProvisionReader creates the reader's account on the backend. The backend
// signals success with 201; anything else is an error.
func (c *backendClientImpl) ProvisionReader(ctx context.Context, provisionReq *ProvisionReaderRequest) error {
	body, err := json.Marshal(provisionReq)
	if err != nil {
		return fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.apiURL+"/api/admin/readers",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}
