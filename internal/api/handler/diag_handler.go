package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const rootMessage = "Pastel Landing API running"

// StoreInspector is the read-only view of the document store the diagnostics
// endpoint needs.
type StoreInspector interface {
	Available() bool
	Ping(ctx context.Context) error
	Name() string
	Collections(ctx context.Context, max int) ([]string, error)
}

// DiagHandler serves the root banner and the /test diagnostics endpoint.
// Both are purely observational.
type DiagHandler struct {
	store  StoreInspector
	uriSet bool
}

func NewDiagHandler(store StoreInspector, uriSet bool) *DiagHandler {
	return &DiagHandler{store: store, uriSet: uriSet}
}

type rootResponse struct {
	Message string `json:"message"`
}

type diagResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root confirms the API is up.
//
// @Summary      API banner
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  rootResponse
// @Router       / [get]
func (h *DiagHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{Message: rootMessage})
}

// Status reports database reachability. It never fails: every failure mode
// degrades to a status string in the body.
//
// @Summary      Database diagnostics
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  diagResponse
// @Router       /test [get]
func (h *DiagHandler) Status(c echo.Context) error {
	resp := diagResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if h.uriSet {
		resp.DatabaseURL = "set"
	}

	if h.store == nil || !h.store.Available() {
		return c.JSON(http.StatusOK, resp)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		resp.Database = "available but not initialized"
		return c.JSON(http.StatusOK, resp)
	}

	resp.DatabaseName = h.store.Name()
	resp.ConnectionStatus = "connected"

	names, err := h.store.Collections(ctx, 10)
	if err != nil {
		resp.Database = "connected but erroring: " + truncateError(err)
		return c.JSON(http.StatusOK, resp)
	}

	resp.Database = "connected"
	resp.Collections = names
	return c.JSON(http.StatusOK, resp)
}

// truncateError keeps diagnostics readable without dumping driver internals.
func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > 50 {
		msg = msg[:50]
	}
	return msg
}
