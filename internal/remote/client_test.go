package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sparehub/internal/domain"
	"sparehub/internal/remote"
)

func TestSubmitOrderSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Items []domain.CartLine `json:"items"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if len(body.Items) != 1 || body.Items[0].SKU != "BRK-PAD-214" || body.Items[0].Qty != 2 {
			t.Fatalf("bad payload: %+v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Order placed."})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL, srv.URL, srv.URL+"/{sku}")
	res, err := c.SubmitOrder(context.Background(), []domain.CartLine{{SKU: "BRK-PAD-214", Qty: 2}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Message != "Order placed." {
		t.Fatalf("want server message, got %+v", res)
	}
}

func TestSubmitOrderUnauthenticatedCarriesRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"login_url": "/login/?next=/"})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL, srv.URL, srv.URL+"/{sku}")
	_, err := c.SubmitOrder(context.Background(), nil)

	var re *domain.RedirectError
	if !errors.As(err, &re) {
		t.Fatalf("want RedirectError, got %v", err)
	}
	if re.URL != "/login/?next=/" {
		t.Fatalf("want login target, got %q", re.URL)
	}
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatal("redirect should unwrap to ErrUnauthenticated")
	}
}

func TestSubmitOrderValidationDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":   "invalid order",
			"details": []string{"qty exceeds stock for BRK-PAD-214"},
		})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL, srv.URL, srv.URL+"/{sku}")
	_, err := c.SubmitOrder(context.Background(), nil)

	var ve *domain.RemoteValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want RemoteValidationError, got %v", err)
	}
	if ve.Msg != "invalid order" || len(ve.Details) != 1 {
		t.Fatalf("details lost: %+v", ve)
	}
}

func TestSubmitOrderServerErrorIsRemoteCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL, srv.URL, srv.URL+"/{sku}")
	if _, err := c.SubmitOrder(context.Background(), nil); !errors.Is(err, domain.ErrRemoteCall) {
		t.Fatalf("want ErrRemoteCall, got %v", err)
	}
}

func TestSubmitRatingExpandsTemplate(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var body struct {
			Rating int `json:"rating"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Rating != 5 {
			t.Fatalf("want rating 5, got %d", body.Rating)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"rating": 4.7, "reviews": 313, "message": "Thanks!"})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL, srv.URL, srv.URL+"/products/{sku}/rate/")
	res, err := c.SubmitRating(context.Background(), "BRK-PAD-214", 5)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/products/BRK-PAD-214/rate/" {
		t.Fatalf("template not expanded: %s", gotPath)
	}
	if res.Rating != 4.7 || res.Reviews != 313 {
		t.Fatalf("server values lost: %+v", res)
	}
}

func TestSubmitRatingConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "already rated"})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL, srv.URL, srv.URL+"/{sku}")
	if _, err := c.SubmitRating(context.Background(), "X", 4); !errors.Is(err, domain.ErrAlreadyRated) {
		t.Fatalf("want ErrAlreadyRated, got %v", err)
	}
}

func TestSubmitContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Decode into a raw map so the wire keys themselves are checked.
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload["email"] != "sam@example.com" {
			t.Fatalf("bad payload: %+v", payload)
		}
		if body, ok := payload["message_body"].(string); !ok || body == "" {
			t.Fatalf("message_body key missing from payload: %+v", payload)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "message": "Message received."})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL, srv.URL, srv.URL+"/{sku}")
	res, err := c.SubmitContact(context.Background(), remote.ContactMessage{
		Name: "Sam", Email: "sam@example.com", Subject: "Fitment", MessageBody: "Does this fit a 2019 Corolla?",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK || res.Message != "Message received." {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestNetworkFailureIsRemoteCall(t *testing.T) {
	c := remote.NewClient("http://127.0.0.1:1/orders", "http://127.0.0.1:1/contact", "http://127.0.0.1:1/{sku}")
	if _, err := c.SubmitOrder(context.Background(), nil); !errors.Is(err, domain.ErrRemoteCall) {
		t.Fatalf("want ErrRemoteCall, got %v", err)
	}
}
