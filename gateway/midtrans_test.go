package gateway

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testSnap(baseURL string) *Snap {
	return &Snap{
		Config: SnapConfig{
			ServerKey: "SB-server-key",
			ClientKey: "SB-client-key",
			BaseURL:   baseURL,
		},
		Client: http.DefaultClient,
	}
}

func signedNotification(serverKey string) Notification {
	n := Notification{
		OrderID:           "Order-ORDAB12CD34EF-20260310090000",
		TransactionStatus: "settlement",
		StatusCode:        "200",
		GrossAmount:       "150000.00",
	}
	h := sha512.New()
	h.Write([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	n.SignatureKey = hex.EncodeToString(h.Sum(nil))
	return n
}

func TestVerifySignature(t *testing.T) {
	snap := testSnap("")

	n := signedNotification(snap.Config.ServerKey)
	if !snap.VerifySignature(n) {
		t.Error("valid signature rejected")
	}

	forged := n
	forged.GrossAmount = "1.00"
	if snap.VerifySignature(forged) {
		t.Error("tampered gross amount accepted")
	}

	wrongKey := signedNotification("someone-elses-key")
	if snap.VerifySignature(wrongKey) {
		t.Error("signature from a different server key accepted")
	}
}

func TestCreateTransaction(t *testing.T) {
	var gotPath, gotUser string
	var gotPayload snapPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, _, _ = r.BasicAuth()
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(TransactionResponse{
			Token:       "snap-token",
			RedirectURL: "https://app.sandbox.midtrans.com/snap/v4/redirection/snap-token",
		})
	}))
	defer server.Close()

	snap := testSnap(server.URL)
	result, err := snap.CreateTransaction(TransactionRequest{
		OrderID:       "Order-ORDAB12CD34EF-20260310090000",
		GrossAmount:   150000,
		CustomerName:  "Rina Wijaya",
		CustomerEmail: "rina@example.com",
		CustomerPhone: "081234567890",
	})
	if err != nil {
		t.Fatalf("create transaction failed: %v", err)
	}

	if gotPath != "/snap/v1/transactions" {
		t.Errorf("path = %s, want /snap/v1/transactions", gotPath)
	}
	if gotUser != snap.Config.ServerKey {
		t.Errorf("basic auth user = %s, want server key", gotUser)
	}
	if gotPayload.TransactionDetails.OrderID != "Order-ORDAB12CD34EF-20260310090000" ||
		gotPayload.TransactionDetails.GrossAmount != 150000 {
		t.Errorf("unexpected transaction details: %+v", gotPayload.TransactionDetails)
	}
	if result.RedirectURL == "" || result.Token != "snap-token" {
		t.Errorf("unexpected response: %+v", result)
	}
}

func TestCreateTransactionRejectedByGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error_messages":["Access denied"]}`))
	}))
	defer server.Close()

	snap := testSnap(server.URL)
	if _, err := snap.CreateTransaction(TransactionRequest{OrderID: "Order-X-1", GrossAmount: 1}); err == nil {
		t.Fatal("expected error on 401 response")
	}
}
