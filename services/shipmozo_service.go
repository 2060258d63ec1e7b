package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/intellij1704/mobile-display-sub002/config"
)

// ShipmozoService talks to the shipping partner's API. The public/private
// key pair lives server-side only; nothing in here is reachable without the
// admin proxy routes in front of it.
type ShipmozoService struct {
	client     *http.Client
	log        *logrus.Entry
	baseURL    string
	publicKey  string
	privateKey string
}

// NewShipmozoService creates a shipping-partner client from the loaded config
func NewShipmozoService(cfg *config.Config) *ShipmozoService {
	return &ShipmozoService{
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        componentLogger("shipmozo"),
		baseURL:    cfg.ShipmozoBaseURL,
		publicKey:  cfg.ShipmozoPublicKey,
		privateKey: cfg.ShipmozoPrivateKey,
	}
}

// OrderDetail is the partner's view of one forwarded order
type OrderDetail struct {
	OrderID       string `json:"order_id"`
	AWBNumber     string `json:"awb_number"`
	CurrentStatus string `json:"current_status"`
	Courier       string `json:"courier"`
}

// TrackingEvent is one scan/status entry in a shipment's history
type TrackingEvent struct {
	Status    string `json:"status"`
	Location  string `json:"location"`
	Timestamp string `json:"timestamp"`
	Remark    string `json:"remark"`
}

// TrackingInfo is the live tracking payload for an assigned waybill
type TrackingInfo struct {
	AWBNumber string          `json:"awb_number"`
	Courier   string          `json:"courier"`
	Events    []TrackingEvent `json:"events"`
}

// TrackingResult is what the proxy route returns to the admin UI. A nil
// Tracking with a populated status means "not yet shipped" and is not an
// error.
type TrackingResult struct {
	ShipmozoStatus string        `json:"shipmozoStatus"`
	Tracking       *TrackingInfo `json:"tracking"`
}

type shipmozoEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *ShipmozoService) post(path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal shipmozo request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build shipmozo request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("public-key", s.publicKey)
	req.Header.Set("private-key", s.privateKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Errorf("%s: request failed - %v", path, err)
		return fmt.Errorf("shipmozo request failed: %w", err)
	}
	defer resp.Body.Close()

	bts, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read shipmozo response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var envelope shipmozoEnvelope
		if err := json.Unmarshal(bts, &envelope); err != nil {
			s.log.Errorf("%s: failed to decode response - %v", path, err)
			return fmt.Errorf("failed to decode shipmozo response: %w", err)
		}
		if out != nil && len(envelope.Data) > 0 {
			if err := json.Unmarshal(envelope.Data, out); err != nil {
				s.log.Errorf("%s: failed to decode response data - %v", path, err)
				return fmt.Errorf("failed to decode shipmozo response: %w", err)
			}
		}
		return nil
	case http.StatusBadRequest:
		s.log.Errorf("%s: bad request - %s", path, string(bts))
		return fmt.Errorf("shipmozo rejected the request: %s", string(bts))
	default:
		s.log.Errorf("%s: unexpected status %d - %s", path, resp.StatusCode, string(bts))
		return fmt.Errorf("shipmozo returned status %d", resp.StatusCode)
	}
}

// GetOrderDetail fetches the partner's record for a forwarded order
func (s *ShipmozoService) GetOrderDetail(orderID string) (*OrderDetail, error) {
	var detail OrderDetail
	if err := s.post("/v1/order-details", map[string]string{"order_id": orderID}, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// TrackShipment fetches live tracking events for an assigned waybill
func (s *ShipmozoService) TrackShipment(awb string) (*TrackingInfo, error) {
	var info TrackingInfo
	if err := s.post("/v1/track-order", map[string]string{"awb_number": awb}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Tracking resolves the full tracking state for an order. When the partner
// has not assigned a waybill yet the second call is skipped and the result
// carries a nil Tracking field, meaning "not yet shipped" rather than a failure.
func (s *ShipmozoService) Tracking(orderID string) (*TrackingResult, error) {
	detail, err := s.GetOrderDetail(orderID)
	if err != nil {
		return nil, err
	}

	result := &TrackingResult{ShipmozoStatus: detail.CurrentStatus}
	if detail.AWBNumber == "" {
		return result, nil
	}

	info, err := s.TrackShipment(detail.AWBNumber)
	if err != nil {
		return nil, err
	}
	result.Tracking = info
	return result, nil
}

// CancelOrder asks the partner to cancel a shipment. Both the order id and
// the waybill are required by the partner API.
func (s *ShipmozoService) CancelOrder(orderID, awb string) error {
	return s.post("/v1/cancel-order", map[string]string{
		"order_id":   orderID,
		"awb_number": awb,
	}, nil)
}
