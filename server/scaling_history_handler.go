package server

import (
	"fmt"
	"net/http"
	"strconv"

	"code.cloudfoundry.org/scalingengine/engine"
	"code.cloudfoundry.org/scalingengine/helpers/handlers"
	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/lager/v3"
)

type ScalingHistoryHandler struct {
	logger         lager.Logger
	historyManager *engine.HistoryManager
}

func NewScalingHistoryHandler(logger lager.Logger, historyManager *engine.HistoryManager) *ScalingHistoryHandler {
	return &ScalingHistoryHandler{
		logger:         logger.Session("scaling-history-handler"),
		historyManager: historyManager,
	}
}

func (h *ScalingHistoryHandler) GetScalingHistories(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	filter, timeZone, err := parseHistoryFilter(r, vars["appid"])
	if err != nil {
		h.logger.Error("get-scaling-histories-parse-filter", err, lager.Data{"appid": vars["appid"], "query": r.URL.RawQuery})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: err.Error()})
		return
	}

	histories, err := h.historyManager.QueryHistories(filter, timeZone)
	if err != nil {
		h.logger.Error("get-scaling-histories-query", err, lager.Data{"appid": filter.AppId})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error getting scaling histories from database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, histories)
}

func (h *ScalingHistoryHandler) GetScalingHistoriesCount(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	filter, _, err := parseHistoryFilter(r, vars["appid"])
	if err != nil {
		h.logger.Error("get-scaling-histories-count-parse-filter", err, lager.Data{"appid": vars["appid"], "query": r.URL.RawQuery})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: err.Error()})
		return
	}

	count, err := h.historyManager.CountHistories(filter)
	if err != nil {
		h.logger.Error("get-scaling-histories-count", err, lager.Data{"appid": filter.AppId})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error counting scaling histories in database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, map[string]int{"count": count})
}

func parseHistoryFilter(r *http.Request, appId string) (models.HistoryFilter, string, error) {
	filter := models.HistoryFilter{AppId: appId}

	query := r.URL.Query()
	if statusParam := query.Get("status"); statusParam != "" {
		status, err := parseStatus(statusParam)
		if err != nil {
			return filter, "", err
		}
		filter.Status = status
		filter.StatusSet = true
	}

	var err error
	filter.StartTime, err = parseInt64Param(query.Get("start"), "start")
	if err != nil {
		return filter, "", err
	}
	filter.EndTime, err = parseInt64Param(query.Get("end"), "end")
	if err != nil {
		return filter, "", err
	}

	filter.MetricName = query.Get("metric")

	if scaleType := query.Get("scaletype"); scaleType != "" {
		if scaleType != models.ScaleTypeIn && scaleType != models.ScaleTypeOut {
			return filter, "", fmt.Errorf("incorrect scaletype parameter %q in query string", scaleType)
		}
		filter.ScaleType = scaleType
	}

	offset, err := parseInt64Param(query.Get("offset"), "offset")
	if err != nil {
		return filter, "", err
	}
	filter.Offset = int(offset)

	maxCount, err := parseInt64Param(query.Get("maxcount"), "maxcount")
	if err != nil {
		return filter, "", err
	}
	filter.MaxCount = int(maxCount)

	return filter, query.Get("timezone"), nil
}

func parseStatus(param string) (models.ScalingStatus, error) {
	for _, status := range []models.ScalingStatus{models.ScalingStatusReady, models.ScalingStatusRealizing,
		models.ScalingStatusCompleted, models.ScalingStatusFailed} {
		if param == status.String() {
			return status, nil
		}
	}
	return 0, fmt.Errorf("incorrect status parameter %q in query string", param)
}

func parseInt64Param(param string, name string) (int64, error) {
	if param == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s parameter in query string", name)
	}
	return value, nil
}
