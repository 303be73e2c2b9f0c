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

type ScalingStateSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewScalingStateSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*ScalingStateSQLDB, error) {
	database, err := db.GetConnection(dbConfig.URL)
	if err != nil {
		return nil, err
	}

	sqldb, err := sqlx.Open(database.DriverName, database.DataSourceName)
	if err != nil {
		logger.Error("open-scaling-state-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		_ = sqldb.Close()
		logger.Error("ping-scaling-state-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	sqldb.SetConnMaxIdleTime(dbConfig.ConnectionMaxIdleTime)

	return &ScalingStateSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (sdb *ScalingStateSQLDB) Close() error {
	err := sdb.sqldb.Close()
	if err != nil {
		sdb.logger.Error("close-scaling-state-db", err, lager.Data{"dbConfig": sdb.dbConfig})
		return err
	}
	return nil
}

func (sdb *ScalingStateSQLDB) GetScalingState(appId string) (*models.AppScalingState, error) {
	query := sdb.sqldb.Rebind("SELECT revision, instancecountstate, lastactiontriggerid, lastactioninstancetarget," +
		" lastactionstarttime, lastactionendtime, errorcode, historyid, scaleevent FROM scaling_state WHERE appid = ?")

	state := &models.AppScalingState{AppId: appId}
	var scaleEvent sql.NullString
	err := sdb.sqldb.QueryRow(query, appId).Scan(&state.Revision, &state.InstanceCountState, &state.LastActionTriggerId,
		&state.LastActionInstanceTarget, &state.LastActionStartTime, &state.LastActionEndTime, &state.ErrorCode,
		&state.HistoryId, &scaleEvent)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sdb.logger.Error("get-scaling-state", err, lager.Data{"query": query, "appId": appId})
		return nil, err
	}

	if scaleEvent.Valid && scaleEvent.String != "" {
		event := &models.ScalingHistory{}
		err = json.Unmarshal([]byte(scaleEvent.String), event)
		if err != nil {
			sdb.logger.Error("get-scaling-state-unmarshal-scale-event", err, lager.Data{"appId": appId})
			return nil, err
		}
		state.ScaleEvent = event
	}
	return state, nil
}

func (sdb *ScalingStateSQLDB) SaveScalingState(state *models.AppScalingState) error {
	var scaleEvent interface{}
	if state.ScaleEvent != nil {
		bytes, err := json.Marshal(state.ScaleEvent)
		if err != nil {
			sdb.logger.Error("save-scaling-state-marshal-scale-event", err, lager.Data{"appId": state.AppId})
			return err
		}
		scaleEvent = string(bytes)
	}

	if state.Revision == 0 {
		query := sdb.sqldb.Rebind("INSERT INTO scaling_state" +
			"(appid, revision, instancecountstate, lastactiontriggerid, lastactioninstancetarget," +
			" lastactionstarttime, lastactionendtime, errorcode, historyid, scaleevent)" +
			" VALUES(?, 1, ?, ?, ?, ?, ?, ?, ?, ?)")
		_, err := sdb.sqldb.Exec(query, state.AppId, state.InstanceCountState, state.LastActionTriggerId,
			state.LastActionInstanceTarget, state.LastActionStartTime, state.LastActionEndTime, state.ErrorCode,
			state.HistoryId, scaleEvent)
		if err != nil {
			sdb.logger.Error("insert-scaling-state", err, lager.Data{"query": query, "state": state})
			return err
		}
		state.Revision = 1
		return nil
	}

	query := sdb.sqldb.Rebind("UPDATE scaling_state SET revision = revision + 1, instancecountstate = ?," +
		" lastactiontriggerid = ?, lastactioninstancetarget = ?, lastactionstarttime = ?, lastactionendtime = ?," +
		" errorcode = ?, historyid = ?, scaleevent = ? WHERE appid = ? AND revision = ?")
	result, err := sdb.sqldb.Exec(query, state.InstanceCountState, state.LastActionTriggerId,
		state.LastActionInstanceTarget, state.LastActionStartTime, state.LastActionEndTime, state.ErrorCode,
		state.HistoryId, scaleEvent, state.AppId, state.Revision)
	if err != nil {
		sdb.logger.Error("update-scaling-state", err, lager.Data{"query": query, "state": state})
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		sdb.logger.Error("update-scaling-state-rows-affected", err, lager.Data{"appId": state.AppId})
		return err
	}
	if affected == 0 {
		return db.ErrConflict
	}
	state.Revision++
	return nil
}

func (sdb *ScalingStateSQLDB) SaveScalingHistory(history *models.ScalingHistory) error {
	if history.Revision == 0 {
		query := sdb.sqldb.Rebind("INSERT INTO scaling_history" +
			"(id, revision, appid, status, adjustment, instances, starttime, endtime, metricname, threshold," +
			" thresholdtype, breachdurationsecs, triggertype, errorcode, scheduletype, timezone, schedulestarttime, dayofweek)" +
			" VALUES(?, 1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		_, err := sdb.sqldb.Exec(query, history.Id, history.AppId, history.Status, history.Adjustment,
			history.Instances, history.StartTime, history.EndTime, history.MetricName, history.Threshold,
			history.ThresholdType, history.BreachDurationSecs, history.TriggerType, history.ErrorCode,
			history.ScheduleType, history.TimeZone, history.ScheduleStartTime, history.DayOfWeek)
		if err != nil {
			sdb.logger.Error("insert-scaling-history", err, lager.Data{"query": query, "history": history})
			return err
		}
		history.Revision = 1
		return nil
	}

	query := sdb.sqldb.Rebind("UPDATE scaling_history SET revision = revision + 1, status = ?, adjustment = ?," +
		" instances = ?, starttime = ?, endtime = ?, metricname = ?, threshold = ?, thresholdtype = ?," +
		" breachdurationsecs = ?, triggertype = ?, errorcode = ?, scheduletype = ?, timezone = ?," +
		" schedulestarttime = ?, dayofweek = ? WHERE id = ? AND revision = ?")
	result, err := sdb.sqldb.Exec(query, history.Status, history.Adjustment, history.Instances, history.StartTime,
		history.EndTime, history.MetricName, history.Threshold, history.ThresholdType, history.BreachDurationSecs,
		history.TriggerType, history.ErrorCode, history.ScheduleType, history.TimeZone, history.ScheduleStartTime,
		history.DayOfWeek, history.Id, history.Revision)
	if err != nil {
		sdb.logger.Error("update-scaling-history", err, lager.Data{"query": query, "history": history})
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		sdb.logger.Error("update-scaling-history-rows-affected", err, lager.Data{"id": history.Id})
		return err
	}
	if affected == 0 {
		return db.ErrConflict
	}
	history.Revision++
	return nil
}

func (sdb *ScalingStateSQLDB) GetScalingHistory(id string) (*models.ScalingHistory, error) {
	if id == "" {
		return nil, nil
	}
	query := sdb.sqldb.Rebind("SELECT id, revision, appid, status, adjustment, instances, starttime, endtime," +
		" metricname, threshold, thresholdtype, breachdurationsecs, triggertype, errorcode, scheduletype," +
		" timezone, schedulestarttime, dayofweek FROM scaling_history WHERE id = ?")

	history := &models.ScalingHistory{}
	err := sdb.sqldb.QueryRow(query, id).Scan(&history.Id, &history.Revision, &history.AppId, &history.Status,
		&history.Adjustment, &history.Instances, &history.StartTime, &history.EndTime, &history.MetricName,
		&history.Threshold, &history.ThresholdType, &history.BreachDurationSecs, &history.TriggerType,
		&history.ErrorCode, &history.ScheduleType, &history.TimeZone, &history.ScheduleStartTime, &history.DayOfWeek)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sdb.logger.Error("get-scaling-history", err, lager.Data{"query": query, "id": id})
		return nil, err
	}
	return history, nil
}

func (sdb *ScalingStateSQLDB) QueryScalingHistories(filter *models.HistoryFilter) ([]*models.ScalingHistory, error) {
	query, args := sdb.buildHistoryQuery("SELECT id, revision, appid, status, adjustment, instances, starttime,"+
		" endtime, metricname, threshold, thresholdtype, breachdurationsecs, triggertype, errorcode, scheduletype,"+
		" timezone, schedulestarttime, dayofweek FROM scaling_history", filter, true)

	rows, err := sdb.sqldb.Query(sdb.sqldb.Rebind(query), args...)
	if err != nil {
		sdb.logger.Error("query-scaling-histories", err, lager.Data{"query": query, "filter": filter})
		return nil, err
	}
	defer func() {
		_ = rows.Close()
		_ = rows.Err()
	}()

	histories := []*models.ScalingHistory{}
	for rows.Next() {
		history := &models.ScalingHistory{}
		err = rows.Scan(&history.Id, &history.Revision, &history.AppId, &history.Status, &history.Adjustment,
			&history.Instances, &history.StartTime, &history.EndTime, &history.MetricName, &history.Threshold,
			&history.ThresholdType, &history.BreachDurationSecs, &history.TriggerType, &history.ErrorCode,
			&history.ScheduleType, &history.TimeZone, &history.ScheduleStartTime, &history.DayOfWeek)
		if err != nil {
			sdb.logger.Error("query-scaling-histories-scan", err)
			return nil, err
		}
		histories = append(histories, history)
	}
	return histories, nil
}

func (sdb *ScalingStateSQLDB) CountScalingHistories(filter *models.HistoryFilter) (int, error) {
	query, args := sdb.buildHistoryQuery("SELECT COUNT(*) FROM scaling_history", filter, false)

	var count int
	err := sdb.sqldb.QueryRow(sdb.sqldb.Rebind(query), args...).Scan(&count)
	if err != nil {
		sdb.logger.Error("count-scaling-histories", err, lager.Data{"query": query, "filter": filter})
		return 0, err
	}
	return count, nil
}

// buildHistoryQuery assembles the WHERE clause shared by list and count
// queries. Only closed records (endtime > 0) are selected; the in-flight
// scale event is merged in by the history manager, not the store.
func (sdb *ScalingStateSQLDB) buildHistoryQuery(selectClause string, filter *models.HistoryFilter, paged bool) (string, []interface{}) {
	query := selectClause + " WHERE appid = ? AND endtime > 0"
	args := []interface{}{filter.AppId}

	if filter.StatusSet {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.StartTime > 0 {
		query += " AND starttime >= ?"
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		query += " AND starttime <= ?"
		args = append(args, filter.EndTime)
	}
	if filter.MetricName != "" {
		query += " AND metricname = ?"
		args = append(args, filter.MetricName)
	}
	switch filter.ScaleType {
	case models.ScaleTypeIn:
		query += " AND adjustment < 0"
	case models.ScaleTypeOut:
		query += " AND adjustment > 0"
	}

	if paged {
		query += " ORDER BY starttime DESC"
		if filter.MaxCount > 0 {
			query += " LIMIT ?"
			args = append(args, filter.MaxCount)
		}
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}
	return query, args
}

func (sdb *ScalingStateSQLDB) GetAppIdsWithOpenAction() ([]string, error) {
	query := "SELECT appid FROM scaling_state WHERE scaleevent IS NOT NULL"
	rows, err := sdb.sqldb.Query(query)
	if err != nil {
		sdb.logger.Error("get-app-ids-with-open-action", err, lager.Data{"query": query})
		return nil, err
	}
	defer func() {
		_ = rows.Close()
		_ = rows.Err()
	}()

	appIds := []string{}
	var appId string
	for rows.Next() {
		if err = rows.Scan(&appId); err != nil {
			sdb.logger.Error("get-app-ids-with-open-action-scan", err)
			return nil, err
		}
		appIds = append(appIds, appId)
	}
	return appIds, nil
}

func (sdb *ScalingStateSQLDB) GetDBStatus() sql.DBStats {
	return sdb.sqldb.Stats()
}

var _ db.ScalingStateDB = &ScalingStateSQLDB{}
