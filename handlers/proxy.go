package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProxyHandler forwards webhook calls verbatim to a configured backend URL.
// It carries no business logic: body and headers pass through, and the
// backend's JSON response is returned as-is.
type ProxyHandler struct {
	Name      string
	TargetURL string
	HTTP      *http.Client
	Logger    *zap.Logger
}

func NewProxyHandler(name, targetURL string, logger *zap.Logger) *ProxyHandler {
	return &ProxyHandler{
		Name:      name,
		TargetURL: targetURL,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		Logger:    logger,
	}
}

// HealthHandler answers webhook endpoint probes.
func (p *ProxyHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "hook": p.Name})
}

// ForwardHandler relays the POST body and headers to the target and returns
// the backend's JSON response verbatim. A non-JSON response or a network
// failure yields a structured error; the original text is logged for
// diagnostics.
func (p *ProxyHandler) ForwardHandler(c *gin.Context) {
	if p.TargetURL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "hook target not configured"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read request body"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, p.TargetURL, bytes.NewReader(body))
	if err != nil {
		p.Logger.Error("proxy: failed to build forward request", zap.String("hook", p.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to forward request"})
		return
	}
	for key, values := range c.Request.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		p.Logger.Error("proxy: forward failed", zap.String("hook", p.Name), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "backend unreachable"})
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		p.Logger.Error("proxy: failed to read backend response", zap.String("hook", p.Name), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "failed to read backend response"})
		return
	}

	if !json.Valid(raw) {
		p.Logger.Error("proxy: non-JSON backend response",
			zap.String("hook", p.Name),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "backend returned a non-JSON response"})
		return
	}

	c.Data(resp.StatusCode, "application/json", raw)
}
