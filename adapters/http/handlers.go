package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"interest-calc/core/engine"
)

// CalculateRequest is the API request body. Each field carries the raw text
// of a form input; JSON numbers are accepted and used verbatim.
type CalculateRequest struct {
	Principal FieldText `json:"principal"`
	Rate      FieldText `json:"rate"`
	Period    FieldText `json:"period"`
}

// FieldText is a form field value given as a JSON string or number
type FieldText string

// UnmarshalJSON implements json.Unmarshaler
func (f *FieldText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FieldText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FieldText(n.String())
	return nil
}

// CalculateResponse is the API response.
// Exactly one of Result and Error is set.
type CalculateResponse struct {
	Result   string `json:"result,omitempty"`
	Interest string `json:"interest,omitempty"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

func (a *Adapter) handleCalculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, CalculateResponse{Error: "malformed request body", Kind: "INVALID_JSON"})
		return
	}

	outcome := a.engine.Submit(c.Request.Context(), engine.Form{
		Principal: string(req.Principal),
		Rate:      string(req.Rate),
		Period:    string(req.Period),
	})
	if !outcome.OK() {
		c.JSON(http.StatusUnprocessableEntity, CalculateResponse{Error: outcome.Error, Kind: string(outcome.Kind)})
		return
	}

	c.JSON(http.StatusOK, CalculateResponse{
		Result:   outcome.Result,
		Interest: outcome.Interest.String(),
	})
}

func (a *Adapter) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": a.config.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *Adapter) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":     a.config.Version,
		"engine":      "interest-calc",
		"api_version": "v1",
	})
}
