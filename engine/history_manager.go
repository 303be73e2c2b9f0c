package engine

import (
	"time"

	"code.cloudfoundry.org/scalingengine/db"
	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/lager/v3"
)

// HistoryManager is the read side of the audit trail. It serves paged
// queries over closed history records, folds the in-flight action into the
// first page so a caller sees the whole picture, and annotates entries with
// the offset between the policy's display time zone and the engine's local
// zone.
type HistoryManager struct {
	logger   lager.Logger
	stateDB  db.ScalingStateDB
	location *time.Location
}

func NewHistoryManager(logger lager.Logger, stateDB db.ScalingStateDB, location *time.Location) *HistoryManager {
	return &HistoryManager{
		logger:   logger.Session("history-manager"),
		stateDB:  stateDB,
		location: location,
	}
}

// QueryHistories returns one page of history entries, newest first. When an
// open scale event matches the filter it occupies the first slot of page one,
// and the store query is shifted by one so later pages stay aligned and no
// closed row is skipped between pages.
func (m *HistoryManager) QueryHistories(filter models.HistoryFilter, timeZone string) ([]*models.ScalingHistory, error) {
	logger := m.logger.Session("query-histories", lager.Data{"appId": filter.AppId})

	openEvent, err := m.matchingOpenEvent(logger, filter)
	if err != nil {
		return nil, err
	}

	storeFilter := filter
	if openEvent != nil {
		if storeFilter.Offset > 0 {
			storeFilter.Offset--
		} else if storeFilter.MaxCount > 1 {
			storeFilter.MaxCount--
		}
	}

	entries, err := m.stateDB.QueryScalingHistories(&storeFilter)
	if err != nil {
		logger.Error("failed-to-query-histories", err)
		return nil, err
	}

	if openEvent != nil && filter.Offset == 0 {
		entries = append([]*models.ScalingHistory{openEvent}, entries...)
		if filter.MaxCount > 0 && len(entries) > filter.MaxCount {
			entries = entries[:filter.MaxCount]
		}
	}

	m.normalizeTimeZone(logger, entries, timeZone)
	return entries, nil
}

// CountHistories returns the total number of entries the filter selects,
// including a matching open scale event.
func (m *HistoryManager) CountHistories(filter models.HistoryFilter) (int, error) {
	logger := m.logger.Session("count-histories", lager.Data{"appId": filter.AppId})

	count, err := m.stateDB.CountScalingHistories(&filter)
	if err != nil {
		logger.Error("failed-to-count-histories", err)
		return 0, err
	}

	openEvent, err := m.matchingOpenEvent(logger, filter)
	if err != nil {
		return 0, err
	}
	if openEvent != nil {
		count++
	}
	return count, nil
}

func (m *HistoryManager) matchingOpenEvent(logger lager.Logger, filter models.HistoryFilter) (*models.ScalingHistory, error) {
	if filter.StatusSet && filter.Status != models.ScalingStatusRealizing {
		return nil, nil
	}

	state, err := m.stateDB.GetScalingState(filter.AppId)
	if err != nil {
		logger.Error("failed-to-get-scaling-state", err)
		return nil, err
	}
	if state == nil || state.ScaleEvent == nil {
		return nil, nil
	}

	event := state.ScaleEvent
	if !filter.MatchesScaleType(event.Adjustment) {
		return nil, nil
	}
	if filter.MetricName != "" && filter.MetricName != event.MetricName {
		return nil, nil
	}
	if filter.StartTime != 0 && event.StartTime < filter.StartTime {
		return nil, nil
	}
	if filter.EndTime != 0 && event.StartTime > filter.EndTime {
		return nil, nil
	}
	return event, nil
}

// normalizeTimeZone rewrites each entry's RawOffset to the engine zone's raw
// offset plus the millisecond difference between the display zone and the
// engine's local zone at the entry's start time. The display zone is the
// request's zone when given, otherwise the zone stored on the oldest entry of
// the page.
func (m *HistoryManager) normalizeTimeZone(logger lager.Logger, entries []*models.ScalingHistory, timeZone string) {
	if len(entries) == 0 {
		return
	}
	if timeZone == "" {
		timeZone = entries[len(entries)-1].TimeZone
	}
	if timeZone == "" {
		return
	}

	location, err := time.LoadLocation(timeZone)
	if err != nil {
		logger.Error("failed-to-load-time-zone", err, lager.Data{"timeZone": timeZone})
		return
	}

	for _, entry := range entries {
		startTime := time.UnixMilli(entry.StartTime)
		_, zoneOffset := startTime.In(location).Zone()
		_, localOffset := startTime.In(m.location).Zone()
		entry.RawOffset = (rawZoneOffset(m.location, startTime.Year()) + zoneOffset - localOffset) * 1000
	}
}

// rawZoneOffset is the location's standard UTC offset in seconds. DST only
// ever adds to the standard offset, so the smaller of the January and July
// offsets is the raw one in either hemisphere.
func rawZoneOffset(loc *time.Location, year int) int {
	_, jan := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).In(loc).Zone()
	_, jul := time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC).In(loc).Zone()
	return min(jan, jul)
}
