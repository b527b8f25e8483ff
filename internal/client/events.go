package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/pkg/events"
)

// SendEvent delivers an event to the function endpoint, signing the body
// when signingKey is set.
func (c *Client) SendEvent(ctx context.Context, signingKey, name string, data json.RawMessage) (*dto.EventDeliveryResponse, error) {
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	body, err := json.Marshal(dto.EventRequest{Name: name, Data: data})
	if err != nil {
		return nil, fmt.Errorf("encoding event: %w", err)
	}

	var env envelope
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&env).
		SetError(&env)
	if signingKey != "" {
		req.SetHeader(events.SignatureHeader, events.Sign([]byte(signingKey), body))
	}

	resp, err := req.Post("/inngest")
	if err != nil {
		return nil, fmt.Errorf("POST /inngest: %w", err)
	}
	if resp.IsError() {
		return nil, newAPIError(resp, &env)
	}

	var out dto.EventDeliveryResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("decoding delivery: %w", err)
	}
	return &out, nil
}

// ListFunctions returns the functions registered at the endpoint
func (c *Client) ListFunctions(ctx context.Context) (*dto.FunctionListResponse, error) {
	var out dto.FunctionListResponse
	if err := c.do(ctx, http.MethodGet, "/inngest", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
