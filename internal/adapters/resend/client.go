// Package resend dispatches booking notifications through the Resend email
// API. A notification is fire-once: the client never retries on its own, the
// handler surfaces provider failure as a 500 and the caller decides.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"daoxanh/internal/adapters/observability"
	"daoxanh/internal/domain"
)

var (
	ErrUnauthorized = errors.New("resend: unauthorized")
	ErrRejected     = errors.New("resend: request rejected")
)

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 10 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Send posts one email and returns the provider's message id. The HTTP
// client's 10s timeout bounds the call; a slow provider is a dispatch
// failure, not a hung request.
func (c *Client) Send(ctx context.Context, m domain.Email) (string, error) {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(sendRequest{From: m.From, To: m.To, Subject: m.Subject, HTML: m.HTML})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("User-Agent", "daoxanh-booking/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("resend", "/emails", 0, time.Since(start))
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("resend", "/emails", resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		var out sendResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			// delivered but undecodable body; treat as sent without an id
			return "", nil
		}
		return out.ID, nil

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", ErrUnauthorized

	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var er errorResponse
		if json.Unmarshal(b, &er) == nil && er.Message != "" {
			return "", fmt.Errorf("%w: %s (status %d)", ErrRejected, er.Message, resp.StatusCode)
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
