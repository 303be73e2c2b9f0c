package healthendpoint

import (
	"code.cloudfoundry.org/scalingengine/db"

	"github.com/prometheus/client_golang/prometheus"
)

type databaseStatusCollector struct {
	descs    []*prometheus.Desc
	dbStatus db.DatabaseStatus
}

// NewDatabaseStatusCollector exports a database connection pool's sql.DBStats
// as gauges named <namespace>_<subSystem>_<dbName>_*.
func NewDatabaseStatusCollector(namespace string, subSystem string, dbName string, dbStatus db.DatabaseStatus) prometheus.Collector {
	desc := func(name string, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subSystem, dbName+"_"+name), help, nil, nil)
	}
	return &databaseStatusCollector{
		descs: []*prometheus.Desc{
			desc("max_open_connections", "Maximum number of open connections to the database"),
			desc("open_connections", "The number of established connections both in use and idle"),
			desc("in_use", "The number of connections currently in use"),
			desc("idle", "The number of idle connections"),
			desc("wait_count", "The total number of connections waited for"),
			desc("wait_duration", "The total time blocked waiting for a new connection"),
			desc("max_idle_closed", "The total number of connections closed due to SetMaxIdleConns"),
			desc("max_lifetime_closed", "The total number of connections closed due to SetConnMaxLifetime"),
		},
		dbStatus: dbStatus,
	}
}

func (c *databaseStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descs {
		ch <- d
	}
}

func (c *databaseStatusCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.dbStatus.GetDBStatus()
	values := []float64{
		float64(stats.MaxOpenConnections),
		float64(stats.OpenConnections),
		float64(stats.InUse),
		float64(stats.Idle),
		float64(stats.WaitCount),
		float64(stats.WaitDuration),
		float64(stats.MaxIdleClosed),
		float64(stats.MaxLifetimeClosed),
	}
	for i, d := range c.descs {
		m, err := prometheus.NewConstMetric(d, prometheus.GaugeValue, values[i])
		if err == nil {
			ch <- m
		}
	}
}
