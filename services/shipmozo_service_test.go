package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intellij1704/mobile-display-sub002/config"
)

// setupMockShipmozoServer simulates the partner API. Each handler receives
// the decoded request body and writes a response.
func setupMockShipmozoServer(handlers map[string]func(w http.ResponseWriter, body map[string]string)) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := handlers[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		handler(w, body)
	}))
}

func shipmozoTestService(baseURL string) *ShipmozoService {
	return NewShipmozoService(&config.Config{
		ShipmozoBaseURL:    baseURL,
		ShipmozoPublicKey:  "pub-test",
		ShipmozoPrivateKey: "priv-test",
	})
}

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	payload, _ := json.Marshal(data)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "ok",
		"data":    json.RawMessage(payload),
	})
}

func TestTracking_WithAWB(t *testing.T) {
	// Hand-rolled server so the credential headers can be asserted too
	var sawKeys atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("public-key") == "pub-test" && r.Header.Get("private-key") == "priv-test" {
			sawKeys.Store(true)
		}

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)

		switch r.URL.Path {
		case "/v1/order-details":
			writeEnvelope(w, OrderDetail{
				OrderID:       body["order_id"],
				AWBNumber:     "AWB123",
				CurrentStatus: "In Transit",
				Courier:       "Delhivery",
			})
		case "/v1/track-order":
			writeEnvelope(w, TrackingInfo{
				AWBNumber: body["awb_number"],
				Courier:   "Delhivery",
				Events: []TrackingEvent{
					{Status: "Picked up", Location: "Bengaluru", Timestamp: "2026-08-01T10:00:00Z"},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	result, err := shipmozoTestService(server.URL).Tracking("order-1")
	assert.NoError(t, err)
	assert.Equal(t, "In Transit", result.ShipmozoStatus)
	assert.NotNil(t, result.Tracking)
	assert.Equal(t, "AWB123", result.Tracking.AWBNumber)
	assert.Len(t, result.Tracking.Events, 1)
	assert.True(t, sawKeys.Load())
}

func TestTracking_NoAWBYet(t *testing.T) {
	var trackCalls atomic.Int32
	server := setupMockShipmozoServer(map[string]func(w http.ResponseWriter, body map[string]string){
		"/v1/order-details": func(w http.ResponseWriter, body map[string]string) {
			writeEnvelope(w, OrderDetail{OrderID: body["order_id"], CurrentStatus: "Order Placed"})
		},
		"/v1/track-order": func(w http.ResponseWriter, body map[string]string) {
			trackCalls.Add(1)
			writeEnvelope(w, TrackingInfo{})
		},
	})
	defer server.Close()

	result, err := shipmozoTestService(server.URL).Tracking("order-2")
	assert.NoError(t, err)

	// Not yet shipped is a valid state: status present, tracking null,
	// and no wasted second call to the partner
	assert.Equal(t, "Order Placed", result.ShipmozoStatus)
	assert.Nil(t, result.Tracking)
	assert.Equal(t, int32(0), trackCalls.Load())

	// The JSON shape the admin UI relies on
	encoded, err := json.Marshal(result)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"shipmozoStatus":"Order Placed","tracking":null}`, string(encoded))
}

func TestTracking_PartnerRejects(t *testing.T) {
	server := setupMockShipmozoServer(map[string]func(w http.ResponseWriter, body map[string]string){
		"/v1/order-details": func(w http.ResponseWriter, body map[string]string) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status":"error","message":"unknown order"}`))
		},
	})
	defer server.Close()

	_, err := shipmozoTestService(server.URL).Tracking("bogus")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestCancelOrder(t *testing.T) {
	var got map[string]string
	server := setupMockShipmozoServer(map[string]func(w http.ResponseWriter, body map[string]string){
		"/v1/cancel-order": func(w http.ResponseWriter, body map[string]string) {
			got = body
			writeEnvelope(w, map[string]string{"result": "cancelled"})
		},
	})
	defer server.Close()

	err := shipmozoTestService(server.URL).CancelOrder("order-3", "AWB999")
	assert.NoError(t, err)
	assert.Equal(t, "order-3", got["order_id"])
	assert.Equal(t, "AWB999", got["awb_number"])
}

func TestCancelOrder_UpstreamFailure(t *testing.T) {
	server := setupMockShipmozoServer(map[string]func(w http.ResponseWriter, body map[string]string){
		"/v1/cancel-order": func(w http.ResponseWriter, body map[string]string) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	})
	defer server.Close()

	err := shipmozoTestService(server.URL).CancelOrder("order-4", "AWB000")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
