package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/scalingengine/cloud"
	"code.cloudfoundry.org/scalingengine/config"
	"code.cloudfoundry.org/scalingengine/db/cacheddb"
	"code.cloudfoundry.org/scalingengine/db/sqldb"
	"code.cloudfoundry.org/scalingengine/engine"
	"code.cloudfoundry.org/scalingengine/healthendpoint"
	"code.cloudfoundry.org/scalingengine/helpers"
	"code.cloudfoundry.org/scalingengine/ratelimiter"
	"code.cloudfoundry.org/scalingengine/server"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
)

func main() {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	flag.Parse()
	if path == "" {
		fmt.Fprintln(os.Stderr, "missing config file")
		os.Exit(1)
	}

	configFile, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to open config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}

	conf, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}
	configFile.Close()

	err = conf.Validate()
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "scalingengine")
	engineClock := clock.NewClock()

	location, err := time.LoadLocation(conf.TimeZone)
	if err != nil {
		logger.Error("failed-to-load-time-zone", err, lager.Data{"timeZone": conf.TimeZone})
		os.Exit(1)
	}

	instanceClient, err := cloud.NewAPIClient(logger, conf.Cloud)
	if err != nil {
		logger.Error("failed-to-create-cloud-api-client", err, lager.Data{"apiUrl": conf.Cloud.APIUrl})
		os.Exit(1)
	}

	policySQLDB, err := sqldb.NewPolicySQLDB(conf.DB.PolicyDB, logger.Session("policy-db"))
	if err != nil {
		logger.Error("failed-to-connect-policy-database", err, lager.Data{"dbConfig": conf.DB.PolicyDB})
		os.Exit(1)
	}
	policyDB := cacheddb.NewCachedPolicyDB(logger, policySQLDB, conf.PolicyCache.TTL, conf.PolicyCache.CleanupInterval)
	defer policyDB.Close()

	stateDB, err := sqldb.NewScalingStateSQLDB(conf.DB.ScalingStateDB, logger.Session("scaling-state-db"))
	if err != nil {
		logger.Error("failed-to-connect-scaling-state-database", err, lager.Data{"dbConfig": conf.DB.ScalingStateDB})
		os.Exit(1)
	}
	defer stateDB.Close()

	stateManager := engine.NewStateManager(logger, stateDB, instanceClient, engineClock)
	stateMonitor := engine.NewStateMonitor(logger, engineClock, conf.Monitor.Interval, instanceClient, stateManager)
	scaleManager := engine.NewAppScaleManager(logger, policyDB, stateDB, instanceClient, stateManager, stateMonitor, engineClock, conf.Event.Timeout)
	eventManager := engine.NewEventManager(logger, engineClock, scaleManager, conf.Event.Timeout, conf.Event.WorkerCount, conf.Event.QueueSize)
	historyManager := engine.NewHistoryManager(logger, stateDB, location)

	reconcileOpenActions(logger, stateDB, stateManager)

	promRegistry := prometheus.NewRegistry()
	httpStatusCollector := healthendpoint.NewHTTPStatusCollector("autoscaler", "scalingengine")
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{
		healthendpoint.NewDatabaseStatusCollector("autoscaler", "scalingengine", "policyDB", policyDB),
		healthendpoint.NewDatabaseStatusCollector("autoscaler", "scalingengine", "scalingStateDB", stateDB),
		httpStatusCollector,
	}, true, logger.Session("scalingengine-prometheus"))

	rateLimiter := ratelimiter.NewRateLimiter(conf.RateLimit.MaxAmount, conf.RateLimit.ValidDuration,
		10*time.Minute, logger.Session("rate-limiter"))

	httpServer, err := server.NewServer(logger.Session("http-server"), conf, eventManager, scaleManager,
		historyManager, policyDB, rateLimiter, httpStatusCollector)
	if err != nil {
		logger.Error("failed-to-create-http-server", err)
		os.Exit(1)
	}

	healthServer, err := healthendpoint.NewServerWithBasicAuth(logger.Session("health-server"), conf.Health, promRegistry)
	if err != nil {
		logger.Error("failed-to-create-health-server", err)
		os.Exit(1)
	}

	engineRunner := ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		eventManager.Start()
		stateMonitor.Start()
		close(ready)
		<-signals
		stateMonitor.Stop()
		eventManager.Stop()
		return nil
	})

	members := grouper.Members{
		{Name: "engine", Runner: engineRunner},
		{Name: "http_server", Runner: httpServer},
		{Name: "health_server", Runner: healthServer},
	}

	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started")

	err = <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}
	logger.Info("exited")
}

// reconcileOpenActions closes out scaling actions interrupted by a crash
// before any new traffic is accepted.
func reconcileOpenActions(logger lager.Logger, stateDB *sqldb.ScalingStateSQLDB, stateManager *engine.StateManager) {
	appIds, err := stateDB.GetAppIdsWithOpenAction()
	if err != nil {
		logger.Error("failed-to-list-apps-with-open-action", err)
		return
	}
	for _, appId := range appIds {
		stateManager.CorrectStateOnStart(appId)
	}
	logger.Info("reconciled-open-actions", lager.Data{"count": len(appIds)})
}
