package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/logger"
	"github.com/geniesugar/geniesugar/internal/sensor"
	"github.com/geniesugar/geniesugar/internal/services"
)

// DexcomHandler bridges the Dexcom sandbox OAuth flow and pulls CGM readings
// into the user's glucose history.
type DexcomHandler struct {
	client  *sensor.Client
	glucose *services.GlucoseService
	audit   *services.AuditService
	appURL  string
}

func NewDexcomHandler(client *sensor.Client, glucose *services.GlucoseService, audit *services.AuditService, appURL string) *DexcomHandler {
	return &DexcomHandler{client: client, glucose: glucose, audit: audit, appURL: appURL}
}

func (h *DexcomHandler) redirectURI() string {
	return h.appURL + "/api/dexcom/callback"
}

// Auth handles GET /api/dexcom/auth: redirects the user into the Dexcom OAuth
// consent flow. The state parameter carries the user ID for the callback.
func (h *DexcomHandler) Auth(c *gin.Context) {
	if !h.client.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Dexcom integration is not configured"})
		return
	}
	c.Redirect(http.StatusFound, h.client.AuthURL(h.redirectURI(), User(c).ID))
}

// Callback handles GET /api/dexcom/callback from Dexcom.
func (h *DexcomHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing code or state"})
		return
	}

	if err := h.client.Exchange(c.Request.Context(), state, code, h.redirectURI()); err != nil {
		logger.Error("Dexcom token exchange failed", "user_id", state, "error", err)
		c.Redirect(http.StatusFound, h.appURL+"/settings?dexcom=error")
		return
	}
	h.audit.Record(c.Request.Context(), state, "dexcom_connect", "Dexcom account linked")
	c.Redirect(http.StatusFound, h.appURL+"/settings?dexcom=connected")
}

// Status handles GET /api/dexcom/status.
func (h *DexcomHandler) Status(c *gin.Context) {
	connected, err := h.client.Connected(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"configured": h.client.Configured(),
		"connected":  connected,
	})
}

// Readings handles GET /api/dexcom/readings: the raw last-24h EGV window.
func (h *DexcomHandler) Readings(c *gin.Context) {
	readings, err := h.client.FetchReadings(c.Request.Context(), User(c).ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch Dexcom readings"})
		return
	}
	c.JSON(http.StatusOK, readings)
}

// Sync handles POST /api/dexcom/sync: imports the last-24h EGV window into the
// user's glucose history. Duplicate or invalid values are skipped.
func (h *DexcomHandler) Sync(c *gin.Context) {
	user := User(c)
	readings, err := h.client.FetchReadings(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch Dexcom readings"})
		return
	}

	imported := 0
	for _, egv := range readings.Egvs {
		timestamp, err := time.Parse(time.RFC3339, egv.SystemTime)
		if err != nil {
			if timestamp, err = time.Parse("2006-01-02T15:04:05", egv.SystemTime); err != nil {
				continue
			}
		}
		note := fmt.Sprintf("Imported from Dexcom (%s)", egv.DisplayTime)
		if _, err := h.glucose.Create(c.Request.Context(), user.ID, egv.Value, timestamp, note); err != nil {
			logger.Warn("Skipped Dexcom reading during sync", "user_id", user.ID, "error", err)
			continue
		}
		imported++
	}
	h.audit.Record(c.Request.Context(), user.ID, "dexcom_sync", fmt.Sprintf("Imported %d of %d readings", imported, len(readings.Egvs)))
	c.JSON(http.StatusOK, gin.H{"imported": imported, "total": len(readings.Egvs)})
}

// Disconnect handles DELETE /api/dexcom/disconnect.
func (h *DexcomHandler) Disconnect(c *gin.Context) {
	user := User(c)
	if err := h.client.Disconnect(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "dexcom_disconnect", "Dexcom account unlinked")
	c.JSON(http.StatusOK, gin.H{"message": "Dexcom disconnected"})
}
