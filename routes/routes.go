package routes

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	TriggerEventPath      = "/v1/apps/{appid}/event"
	TriggerEventRouteName = "TriggerEvent"

	ScheduleTickPath      = "/v1/apps/{appid}/schedule"
	ScheduleTickRouteName = "ScheduleTick"

	ScalingHistoriesPath         = "/v1/apps/{appid}/scaling_histories"
	GetScalingHistoriesRouteName = "GetScalingHistories"

	ScalingHistoriesCountPath         = "/v1/apps/{appid}/scaling_histories/count"
	GetScalingHistoriesCountRouteName = "GetScalingHistoriesCount"
)

type ScalingEngineRoute struct {
	scalingEngineRoutes *mux.Router
}

var scalingEngineRouteInstance = newRouters()

func newRouters() *ScalingEngineRoute {
	instance := &ScalingEngineRoute{
		scalingEngineRoutes: mux.NewRouter(),
	}

	instance.scalingEngineRoutes.Path(TriggerEventPath).Methods(http.MethodPost).Name(TriggerEventRouteName)
	instance.scalingEngineRoutes.Path(ScheduleTickPath).Methods(http.MethodPut).Name(ScheduleTickRouteName)
	instance.scalingEngineRoutes.Path(ScalingHistoriesCountPath).Methods(http.MethodGet).Name(GetScalingHistoriesCountRouteName)
	instance.scalingEngineRoutes.Path(ScalingHistoriesPath).Methods(http.MethodGet).Name(GetScalingHistoriesRouteName)

	return instance
}

func ScalingEngineRoutes() *mux.Router {
	return scalingEngineRouteInstance.scalingEngineRoutes
}
