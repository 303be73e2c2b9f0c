package db

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	"code.cloudfoundry.org/scalingengine/models"
)

const (
	PostgresDriverName = "postgres"
	MysqlDriverName    = "mysql"
)

var ErrDoesNotExist = fmt.Errorf("doesn't exist")
var ErrConflict = fmt.Errorf("conflicting entry exists")

type DatabaseConfig struct {
	URL                   string        `yaml:"url"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
	ConnectionMaxIdleTime time.Duration `yaml:"connection_max_idletime"`
}

type DatabaseStatus interface {
	GetDBStatus() sql.DBStats
}

// PolicyDB looks up applications and their attached scaling policies. Both
// lookups return ErrDoesNotExist when the row is absent.
type PolicyDB interface {
	DatabaseStatus
	GetApplication(appId string) (*models.Application, error)
	GetAppPolicy(appId string) (*models.Policy, error)
	io.Closer
}

// ScalingStateDB persists the per-application scaling state machine and the
// scaling history audit log. Saves enforce revision-token optimistic
// concurrency: a write whose revision does not match the stored row fails
// with ErrConflict.
type ScalingStateDB interface {
	DatabaseStatus
	GetScalingState(appId string) (*models.AppScalingState, error)
	SaveScalingState(state *models.AppScalingState) error
	SaveScalingHistory(history *models.ScalingHistory) error
	GetScalingHistory(id string) (*models.ScalingHistory, error)
	QueryScalingHistories(filter *models.HistoryFilter) ([]*models.ScalingHistory, error)
	CountScalingHistories(filter *models.HistoryFilter) (int, error)
	GetAppIdsWithOpenAction() ([]string, error)
	io.Closer
}
