package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sparehub/internal/domain"
)

// Client talks to the marketplace's order, rating and contact endpoints.
// The endpoints are opaque JSON-over-HTTP collaborators; everything they
// return is mapped onto the engine's error taxonomy here.
type Client struct {
	HTTP            *http.Client
	OrderURL        string
	ContactURL      string
	RateURLTemplate string // contains a {sku} placeholder
}

func NewClient(orderURL, contactURL, rateTemplate string) *Client {
	return &Client{
		HTTP:            &http.Client{Timeout: 15 * time.Second},
		OrderURL:        orderURL,
		ContactURL:      contactURL,
		RateURLTemplate: rateTemplate,
	}
}

type OrderResult struct {
	Message string `json:"message"`
}

type orderResponse struct {
	Message  string   `json:"message"`
	Error    string   `json:"error"`
	Details  []string `json:"details"`
	LoginURL string   `json:"login_url"`
	Redirect string   `json:"redirect"`
}

// SubmitOrder posts the cart lines. A 401 yields a RedirectError carrying the
// login target; a 4xx validation rejection yields a RemoteValidationError;
// network and parse failures wrap ErrRemoteCall.
func (c *Client) SubmitOrder(ctx context.Context, items []domain.CartLine) (OrderResult, error) {
	body := struct {
		Items []domain.CartLine `json:"items"`
	}{Items: items}

	var parsed orderResponse
	status, err := c.postJSON(ctx, c.OrderURL, body, &parsed)
	if err != nil {
		return OrderResult{}, fmt.Errorf("%w: order submission: %v", domain.ErrRemoteCall, err)
	}

	switch {
	case status == http.StatusUnauthorized:
		target := parsed.LoginURL
		if target == "" {
			target = parsed.Redirect
		}
		return OrderResult{}, &domain.RedirectError{URL: target}
	case status >= 200 && status < 300:
		return OrderResult{Message: parsed.Message}, nil
	case status >= 400 && status < 500 && parsed.Error != "":
		return OrderResult{}, &domain.RemoteValidationError{Msg: parsed.Error, Details: parsed.Details}
	}
	return OrderResult{}, fmt.Errorf("%w: order submission: status %d", domain.ErrRemoteCall, status)
}

type RatingResult struct {
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Message string  `json:"message"`
}

// SubmitRating posts a 1-5 value to the per-SKU rating endpoint. A 409 means
// the server already holds a rating from this account and is returned as
// ErrAlreadyRated so the caller can reconcile its local guard.
func (c *Client) SubmitRating(ctx context.Context, sku string, value int) (RatingResult, error) {
	url := strings.ReplaceAll(c.RateURLTemplate, "{sku}", sku)
	body := struct {
		Rating int `json:"rating"`
	}{Rating: value}

	var parsed RatingResult
	status, err := c.postJSON(ctx, url, body, &parsed)
	if err != nil {
		return RatingResult{}, fmt.Errorf("%w: rating submission: %v", domain.ErrRemoteCall, err)
	}

	switch {
	case status == http.StatusConflict:
		return RatingResult{}, domain.ErrAlreadyRated
	case status >= 200 && status < 300:
		return parsed, nil
	}
	return RatingResult{}, fmt.Errorf("%w: rating submission: status %d", domain.ErrRemoteCall, status)
}

type ContactMessage struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	MessageBody string `json:"message_body"`
}

type ContactResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func (c *Client) SubmitContact(ctx context.Context, msg ContactMessage) (ContactResult, error) {
	var parsed ContactResult
	status, err := c.postJSON(ctx, c.ContactURL, msg, &parsed)
	if err != nil {
		return ContactResult{}, fmt.Errorf("%w: contact submission: %v", domain.ErrRemoteCall, err)
	}
	if status < 200 || status >= 300 || !parsed.OK {
		return ContactResult{}, fmt.Errorf("%w: contact submission: status %d", domain.ErrRemoteCall, status)
	}
	return parsed, nil
}

// postJSON sends the request and decodes whatever body came back, 2xx or not,
// so callers can inspect error payloads. The decode is best-effort: an
// unparseable body on a non-2xx status still surfaces the status.
func (c *Client) postJSON(ctx context.Context, url string, body, out any) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if derr := json.NewDecoder(resp.Body).Decode(out); derr != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp.StatusCode, derr
		}
	}
	return resp.StatusCode, nil
}
