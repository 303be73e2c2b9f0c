package server

import (
	"net/http"

	"code.cloudfoundry.org/scalingengine/config"
	"code.cloudfoundry.org/scalingengine/db/cacheddb"
	"code.cloudfoundry.org/scalingengine/engine"
	"code.cloudfoundry.org/scalingengine/healthendpoint"
	"code.cloudfoundry.org/scalingengine/helpers"
	"code.cloudfoundry.org/scalingengine/ratelimiter"
	"code.cloudfoundry.org/scalingengine/routes"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
)

type VarsFunc func(w http.ResponseWriter, r *http.Request, vars map[string]string)

func (vh VarsFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vh(w, r, vars)
}

func NewServer(logger lager.Logger, conf *config.Config, eventManager *engine.EventManager, scaleManager *engine.AppScaleManager,
	historyManager *engine.HistoryManager, policyDB *cacheddb.CachedPolicyDB, rateLimiter ratelimiter.Limiter,
	httpStatusCollector healthendpoint.HTTPStatusCollector) (ifrit.Runner, error) {
	scalingHandler := NewScalingHandler(logger, eventManager, scaleManager, policyDB)
	historyHandler := NewScalingHistoryHandler(logger, historyManager)
	rateLimiterMiddleware := ratelimiter.NewRateLimiterMiddleware("appid", rateLimiter, logger.Session("rate-limiter-middleware"))
	httpStatusCollectMiddleware := healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector)

	r := routes.ScalingEngineRoutes()
	r.Use(httpStatusCollectMiddleware.Collect)
	r.Get(routes.TriggerEventRouteName).Handler(rateLimiterMiddleware.CheckRateLimit(VarsFunc(scalingHandler.HandleTriggerEvent)))
	r.Get(routes.ScheduleTickRouteName).Handler(VarsFunc(scalingHandler.HandleScheduleTick))
	r.Get(routes.GetScalingHistoriesRouteName).Handler(VarsFunc(historyHandler.GetScalingHistories))
	r.Get(routes.GetScalingHistoriesCountRouteName).Handler(VarsFunc(historyHandler.GetScalingHistoriesCount))

	return helpers.NewHTTPServer(logger, conf.Server, r)
}
