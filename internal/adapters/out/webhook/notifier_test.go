package webhook_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/internal/adapters/out/webhook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationClient_SendOTPMessage(t *testing.T) {
	t.Run("posts the code with the unit label", func(t *testing.T) {
		var received map[string]string
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer gateway.Close()

		client := webhook.NewNotificationClient(gateway.URL)
		err := client.SendOTPMessage(t.Context(), "+60123456789", "482913", "Set A")

		require.NoError(t, err)
		assert.Equal(t, "+60123456789", received["recipient"])
		assert.Contains(t, received["subject"], "Set A")
		assert.Contains(t, received["body"], "482913")
	})

	t.Run("gateway failure surfaces as an error", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer gateway.Close()

		client := webhook.NewNotificationClient(gateway.URL)
		err := client.SendCustomerUpdate(t.Context(), "+60123456789", "Return completed", "All done")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestNotificationClient_SendCustomerUpdate(t *testing.T) {
	var received map[string]string
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	client := webhook.NewNotificationClient(gateway.URL)
	err := client.SendCustomerUpdate(t.Context(), "customer@example.com", "Inspection outcome", "Two props damaged")

	require.NoError(t, err)
	assert.Equal(t, "Inspection outcome", received["subject"])
	assert.Equal(t, "Two props damaged", received["body"])
}
