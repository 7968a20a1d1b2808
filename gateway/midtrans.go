package gateway

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"studio_booking/config"
)

const (
	sandboxBaseURL    = "https://app.sandbox.midtrans.com"
	productionBaseURL = "https://app.midtrans.com"
)

type SnapConfig struct {
	ServerKey    string
	ClientKey    string
	BaseURL      string
	IsProduction bool
}

// Snap talks to the Midtrans Snap API: it creates hosted payment pages and
// verifies the signature of incoming payment notifications.
type Snap struct {
	Config SnapConfig
	Client *http.Client
}

func NewSnap() *Snap {
	isProduction := config.Config("MIDTRANS_ENV") == "production"
	baseURL := sandboxBaseURL
	serverKey := config.Config("PAYMENT_DEV_SERVER_KEY")
	clientKey := config.Config("PAYMENT_DEV_CLIENT_KEY")
	if isProduction {
		baseURL = productionBaseURL
		serverKey = config.Config("PAYMENT_PROD_SERVER_KEY")
		clientKey = config.Config("PAYMENT_PROD_CLIENT_KEY")
	}

	return &Snap{
		Config: SnapConfig{
			ServerKey:    serverKey,
			ClientKey:    clientKey,
			BaseURL:      baseURL,
			IsProduction: isProduction,
		},
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

type TransactionRequest struct {
	OrderID       string
	GrossAmount   int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type TransactionResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type snapPayload struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	CreditCard struct {
		Secure bool `json:"secure"`
	} `json:"credit_card"`
	CustomerDetails struct {
		FirstName string `json:"first_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"customer_details"`
}

// CreateTransaction asks Snap for a hosted payment page and returns its URL.
func (s *Snap) CreateTransaction(req TransactionRequest) (*TransactionResponse, error) {
	var payload snapPayload
	payload.TransactionDetails.OrderID = req.OrderID
	payload.TransactionDetails.GrossAmount = req.GrossAmount
	payload.CreditCard.Secure = true
	payload.CustomerDetails.FirstName = req.CustomerName
	payload.CustomerDetails.Email = req.CustomerEmail
	payload.CustomerDetails.Phone = req.CustomerPhone

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, s.Config.BaseURL+"/snap/v1/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(s.Config.ServerKey, "")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("cannot reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment gateway returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result TransactionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("invalid gateway response: %w", err)
	}
	return &result, nil
}

// Notification is the webhook body Midtrans posts after a transaction changes state.
type Notification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	SignatureKey      string `json:"signature_key"`
}

// VerifySignature checks the SHA-512 signature Midtrans attaches to every
// notification: sha512(order_id + status_code + gross_amount + serverKey).
func (s *Snap) VerifySignature(n Notification) bool {
	h := sha512.New()
	h.Write([]byte(n.OrderID + n.StatusCode + n.GrossAmount + s.Config.ServerKey))
	return hex.EncodeToString(h.Sum(nil)) == n.SignatureKey
}
