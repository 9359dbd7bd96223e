package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorloop/looper/pkg/services"
)

// webhookBody is the identity-provider event envelope. The provider
// delivers emails as a list of address objects; the primary one is first.
type webhookBody struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

func (b *webhookBody) email() string {
	if len(b.Data.EmailAddresses) == 0 {
		return ""
	}
	return b.Data.EmailAddresses[0].EmailAddress
}

// HandleWebhook ingests a signed identity-provider event. The signature
// covers the raw body, so the body is read before any decoding.
func (s *Server) HandleWebhook(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	eventID := c.GetHeader("event_id")
	timestamp := c.GetHeader("timestamp")
	signature := c.GetHeader("signature")

	if !services.VerifySignature(s.webhookSecret, timestamp, raw, signature) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var body webhookBody
	if err := json.Unmarshal(raw, &body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event body"})
		return
	}

	var payload map[string]interface{}
	_ = json.Unmarshal(raw, &payload)

	status, err := s.webhooks.ProcessEvent(c.Request.Context(), services.WebhookInput{
		EventID:        eventID,
		EventType:      body.Type,
		ExternalUserID: body.Data.ID,
		Email:          body.email(),
		Payload:        payload,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
