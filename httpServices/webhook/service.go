package httpServices

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	partnerTypes "vtc-onboarding/types/partner"
)

// WorkflowClient relays submissions to an external workflow-automation
// webhook. Forwarding is fire-and-forget: no lookup, no retry, a
// non-success status surfaces as an error.
type WorkflowClient struct {
	httpClient *http.Client
	webhookURL string
}

func NewWorkflowClient(webhookURL string) *WorkflowClient {
	return &WorkflowClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		webhookURL: webhookURL,
	}
}

// Forward posts the payload to the webhook.
func (c *WorkflowClient) Forward(ctx context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.New("workflow webhook returned non-OK status: " + resp.Status)
	}
	return nil
}

// Submit forwards a draft record as-is, letting the wizard target the
// webhook directly instead of the submission endpoint.
func (c *WorkflowClient) Submit(ctx context.Context, req *partnerTypes.SubmissionRequest) error {
	return c.Forward(ctx, req)
}
