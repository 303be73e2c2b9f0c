package server

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/scalingengine/db/cacheddb"
	"code.cloudfoundry.org/scalingengine/engine"
	"code.cloudfoundry.org/scalingengine/helpers/handlers"
	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/lager/v3"
)

type ScalingHandler struct {
	logger       lager.Logger
	eventManager *engine.EventManager
	scaleManager *engine.AppScaleManager
	policyDB     *cacheddb.CachedPolicyDB
}

func NewScalingHandler(logger lager.Logger, eventManager *engine.EventManager, scaleManager *engine.AppScaleManager, policyDB *cacheddb.CachedPolicyDB) *ScalingHandler {
	return &ScalingHandler{
		logger:       logger.Session("scaling-handler"),
		eventManager: eventManager,
		scaleManager: scaleManager,
		policyDB:     policyDB,
	}
}

// HandleTriggerEvent accepts a threshold breach event for asynchronous
// processing. A duplicate of an event already in flight is acknowledged and
// dropped.
func (h *ScalingHandler) HandleTriggerEvent(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	appId := vars["appid"]

	event := models.TriggerEvent{}
	err := json.NewDecoder(r.Body).Decode(&event)
	if err != nil {
		h.logger.Error("handle-trigger-event-unmarshal", err, lager.Data{"appid": appId})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect trigger event in request body"})
		return
	}
	event.AppId = appId

	if event.TriggerId != models.TriggerIdLowerThreshold && event.TriggerId != models.TriggerIdUpperThreshold {
		h.logger.Error("handle-trigger-event-invalid-trigger-id", nil, lager.Data{"appid": appId, "triggerId": event.TriggerId})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Invalid trigger id"})
		return
	}

	h.logger.Debug("handle-trigger-event", lager.Data{"appid": appId, "event": event})
	h.eventManager.SubmitTriggerEvent(event)
	w.WriteHeader(http.StatusAccepted)
}

// HandleScheduleTick applies a schedule window change synchronously: the
// cached policy is invalidated first so the fresh window is read, then the
// instance count is forced back into the window when it lies outside.
func (h *ScalingHandler) HandleScheduleTick(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	appId := vars["appid"]
	h.logger.Debug("handle-schedule-tick", lager.Data{"appid": appId})

	h.policyDB.InvalidateCache(appId)

	result, err := h.scaleManager.DoScaleBySchedule(appId)
	if err != nil {
		h.logger.Error("handle-schedule-tick-scale", err, lager.Data{"appid": appId})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error taking schedule scaling action"})
		return
	}
	if result == nil {
		result = &engine.AppScalingResult{AppId: appId}
	}
	handlers.WriteJSONResponse(w, http.StatusOK, result)
}
