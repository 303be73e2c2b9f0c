package sqldb

import (
	"database/sql"
	"encoding/json"

	"code.cloudfoundry.org/scalingengine/db"
	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/lager/v3"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type PolicySQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewPolicySQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*PolicySQLDB, error) {
	database, err := db.GetConnection(dbConfig.URL)
	if err != nil {
		return nil, err
	}

	sqldb, err := sqlx.Open(database.DriverName, database.DataSourceName)
	if err != nil {
		logger.Error("open-policy-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		_ = sqldb.Close()
		logger.Error("ping-policy-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	sqldb.SetConnMaxIdleTime(dbConfig.ConnectionMaxIdleTime)

	return &PolicySQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (pdb *PolicySQLDB) Close() error {
	err := pdb.sqldb.Close()
	if err != nil {
		pdb.logger.Error("close-policy-db", err, lager.Data{"dbConfig": pdb.dbConfig})
		return err
	}
	return nil
}

func (pdb *PolicySQLDB) GetApplication(appId string) (*models.Application, error) {
	query := pdb.sqldb.Rebind("SELECT name, policyid FROM applications WHERE appid = ?")

	app := &models.Application{AppId: appId}
	err := pdb.sqldb.QueryRow(query, appId).Scan(&app.Name, &app.PolicyId)
	if err == sql.ErrNoRows {
		return nil, db.ErrDoesNotExist
	}
	if err != nil {
		pdb.logger.Error("get-application", err, lager.Data{"query": query, "appId": appId})
		return nil, err
	}
	return app, nil
}

func (pdb *PolicySQLDB) GetAppPolicy(appId string) (*models.Policy, error) {
	query := pdb.sqldb.Rebind("SELECT policy_json FROM policies p, applications a" +
		" WHERE a.appid = ? AND p.policyid = a.policyid")

	var policyJson []byte
	err := pdb.sqldb.QueryRow(query, appId).Scan(&policyJson)
	if err == sql.ErrNoRows {
		return nil, db.ErrDoesNotExist
	}
	if err != nil {
		pdb.logger.Error("get-app-policy", err, lager.Data{"query": query, "appId": appId})
		return nil, err
	}

	policy := &models.Policy{}
	err = json.Unmarshal(policyJson, policy)
	if err != nil {
		pdb.logger.Error("get-app-policy-unmarshal", err, lager.Data{"appId": appId, "policyJson": string(policyJson)})
		return nil, err
	}
	return policy, nil
}

func (pdb *PolicySQLDB) GetDBStatus() sql.DBStats {
	return pdb.sqldb.Stats()
}

var _ db.PolicyDB = &PolicySQLDB{}
