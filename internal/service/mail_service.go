package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"parcel-delivery-service/internal/dto"
)

// Cliente fino del relay de mail externo. El formulario de contacto se
// reenvía tal cual; no hay reintentos.
type MailService struct {
	relayURL string
	apiKey   string
	client   *http.Client
}

func NewMailService(relayURL, apiKey string) *MailService {
	return &MailService{
		relayURL: relayURL,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (m *MailService) SendContact(ctx context.Context, req dto.ContactRequest) error {
	body, err := json.Marshal(map[string]string{
		"from":    req.Email,
		"name":    req.Name,
		"subject": req.Subject,
		"message": req.Message,
	})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", m.relayURL+"/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("mail relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail relay returned %d", resp.StatusCode)
	}
	return nil
}
