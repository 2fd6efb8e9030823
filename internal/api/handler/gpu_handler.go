package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/crimsoninnovative/console/internal/api/metrics"
	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

// TelemetrySource supplies the latest utilisation sample.
type TelemetrySource interface {
	Snapshot() domain.Telemetry
}

type GPUHandler struct {
	store     ports.ClusterStore
	telemetry TelemetrySource
}

func NewGPUHandler(store ports.ClusterStore, telemetry TelemetrySource) *GPUHandler {
	return &GPUHandler{store: store, telemetry: telemetry}
}

func countMutation(entity, op string, applied bool) {
	metrics.StoreMutationsTotal.WithLabelValues(string(domain.ConsoleGPU), entity, op, strconv.FormatBool(applied)).Inc()
}

// Users handles GET /v1/gpu/users.
//
// @Summary      List cluster users
// @Tags         gpu
// @Produce      json
// @Success      200  {array}  domain.ClusterUser
// @Router       /v1/gpu/users [get]
func (h *GPUHandler) Users(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Users())
}

// AddUser handles POST /v1/gpu/users.
//
// @Summary      Add a cluster user
// @Tags         gpu
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                 false  "Replay protection key"
// @Param        body             body      addClusterUserRequest  true   "User without id"
// @Success      201              {object}  domain.ClusterUser
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/gpu/users [post]
func (h *GPUHandler) AddUser(c echo.Context) error {
	var req addClusterUserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	u := h.store.AddUser(req.toInput())
	countMutation("user", "add", true)
	return c.JSON(http.StatusCreated, u)
}

// UpdateUser handles PATCH /v1/gpu/users/:id.
//
// @Summary      Update a cluster user
// @Tags         gpu
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "User id"
// @Param        body  body      patchClusterUserRequest  true  "Fields to change"
// @Success      200   {object}  updatedResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/gpu/users/{id} [patch]
func (h *GPUHandler) UpdateUser(c echo.Context) error {
	var req patchClusterUserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	ok := h.store.UpdateUser(c.Param("id"), req.toPatch())
	countMutation("user", "update", ok)
	return c.JSON(http.StatusOK, updatedResponse{Updated: ok})
}

// DeleteUser handles DELETE /v1/gpu/users/:id.
//
// @Summary      Delete a cluster user
// @Tags         gpu
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  deletedResponse
// @Router       /v1/gpu/users/{id} [delete]
func (h *GPUHandler) DeleteUser(c echo.Context) error {
	ok := h.store.DeleteUser(c.Param("id"))
	countMutation("user", "delete", ok)
	return c.JSON(http.StatusOK, deletedResponse{Deleted: ok})
}

// Nodes handles GET /v1/gpu/nodes.
//
// @Summary      List nodes
// @Tags         gpu
// @Produce      json
// @Success      200  {array}  nodeResponse
// @Router       /v1/gpu/nodes [get]
func (h *GPUHandler) Nodes(c echo.Context) error {
	return c.JSON(http.StatusOK, toNodeResponses(h.store.Nodes()))
}

// AddNode handles POST /v1/gpu/nodes.
//
// @Summary      Add a node
// @Description  The password is stored as a bcrypt hash and never returned.
// @Tags         gpu
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string          false  "Replay protection key"
// @Param        body             body      addNodeRequest  true   "Node without id"
// @Success      201              {object}  nodeResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /v1/gpu/nodes [post]
func (h *GPUHandler) AddNode(c echo.Context) error {
	var req addNodeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	n, err := h.store.AddNode(req.toInput())
	if err != nil {
		return err
	}
	countMutation("node", "add", true)
	metrics.ObserveStats(h.store.Stats())
	return c.JSON(http.StatusCreated, toNodeResponse(n))
}

// UpdateNode handles PATCH /v1/gpu/nodes/:id.
//
// @Summary      Update a node
// @Tags         gpu
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Node id"
// @Param        body  body      patchNodeRequest  true  "Fields to change"
// @Success      200   {object}  updatedResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/gpu/nodes/{id} [patch]
func (h *GPUHandler) UpdateNode(c echo.Context) error {
	var req patchNodeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	ok := h.store.UpdateNode(c.Param("id"), req.toPatch())
	countMutation("node", "update", ok)
	if ok {
		metrics.ObserveStats(h.store.Stats())
	}
	return c.JSON(http.StatusOK, updatedResponse{Updated: ok})
}

// DeleteNode handles DELETE /v1/gpu/nodes/:id.
//
// @Summary      Delete a node
// @Tags         gpu
// @Produce      json
// @Param        id   path      string  true  "Node id"
// @Success      200  {object}  deletedResponse
// @Router       /v1/gpu/nodes/{id} [delete]
func (h *GPUHandler) DeleteNode(c echo.Context) error {
	ok := h.store.DeleteNode(c.Param("id"))
	countMutation("node", "delete", ok)
	if ok {
		metrics.ObserveStats(h.store.Stats())
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: ok})
}

// Model handles GET /v1/gpu/model.
//
// @Summary      Model configuration
// @Tags         gpu
// @Produce      json
// @Success      200  {object}  modelConfigResponse
// @Router       /v1/gpu/model [get]
func (h *GPUHandler) Model(c echo.Context) error {
	return c.JSON(http.StatusOK, toModelConfigResponse(h.store.ModelConfig()))
}

// UpdateModel handles PATCH /v1/gpu/model.
//
// @Summary      Update the model configuration
// @Tags         gpu
// @Accept       json
// @Produce      json
// @Param        body  body      patchModelRequest  true  "Fields to change"
// @Success      200   {object}  modelConfigResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/gpu/model [patch]
func (h *GPUHandler) UpdateModel(c echo.Context) error {
	var req patchModelRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	m := h.store.UpdateModelConfig(req.toPatch())
	countMutation("model", "update", true)
	return c.JSON(http.StatusOK, toModelConfigResponse(m))
}

// Stats handles GET /v1/gpu/stats.
//
// @Summary      Dashboard aggregates
// @Tags         gpu
// @Produce      json
// @Success      200  {object}  domain.ClusterStats
// @Router       /v1/gpu/stats [get]
func (h *GPUHandler) Stats(c echo.Context) error {
	st := h.store.Stats()
	metrics.ObserveStats(st)
	return c.JSON(http.StatusOK, st)
}

// Monitoring handles GET /v1/gpu/monitoring.
//
// @Summary      Latest utilisation sample
// @Tags         gpu
// @Produce      json
// @Success      200  {object}  domain.Telemetry
// @Router       /v1/gpu/monitoring [get]
func (h *GPUHandler) Monitoring(c echo.Context) error {
	t := h.telemetry.Snapshot()
	metrics.ObserveTelemetry(t)
	return c.JSON(http.StatusOK, t)
}
