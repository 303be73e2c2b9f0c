package engine

import (
	"code.cloudfoundry.org/scalingengine/cloud"
	"code.cloudfoundry.org/scalingengine/db"
	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// ScalingAction carries the context of one scaling attempt through the
// state machine. TriggerId and Trigger are empty/nil on the schedule path.
type ScalingAction struct {
	AppId             string
	ActionId          string
	TriggerId         string
	CurrentInstances  int
	NewInstances      int
	Trigger           *models.PolicyTrigger
	TriggerType       models.TriggerType
	ScheduleType      string
	TimeZone          string
	ScheduleStartTime int64
	DayOfWeek         int
}

// StateManager owns the per-application scaling state machine
// (READY -> REALIZING -> COMPLETED/FAILED) and is the only writer of
// AppScalingState and ScalingHistory records. Store failures are logged and
// reported as failure signals, never propagated; callers treat a failure as
// "do not proceed".
type StateManager struct {
	logger         lager.Logger
	stateDB        db.ScalingStateDB
	instanceClient cloud.InstanceClient
	clock          clock.Clock
}

func NewStateManager(logger lager.Logger, stateDB db.ScalingStateDB, instanceClient cloud.InstanceClient, clock clock.Clock) *StateManager {
	return &StateManager{
		logger:         logger.Session("state-manager"),
		stateDB:        stateDB,
		instanceClient: instanceClient,
		clock:          clock,
	}
}

// SetScalingStateRealizing opens a new history record tagged with the
// actionId and moves the application to REALIZING. It returns false when
// the store write fails; no cloud mutation may be issued in that case.
func (m *StateManager) SetScalingStateRealizing(action *ScalingAction) bool {
	logger := m.logger.Session("set-realizing", lager.Data{"appId": action.AppId, "actionId": action.ActionId})

	state, err := m.stateDB.GetScalingState(action.AppId)
	if err != nil {
		logger.Error("failed-to-get-scaling-state", err)
		return false
	}
	if state == nil {
		state = &models.AppScalingState{AppId: action.AppId, InstanceCountState: models.ScalingStatusReady}
	}

	startTime := m.clock.Now().UnixMilli()
	history := m.buildScalingHistory(action, models.ScalingStatusRealizing, startTime, 0, "")
	history.Id = action.ActionId

	err = m.stateDB.SaveScalingHistory(history)
	if err != nil {
		logger.Error("failed-to-save-realizing-history", err)
		return false
	}

	state.InstanceCountState = models.ScalingStatusRealizing
	state.LastActionTriggerId = action.TriggerId
	state.LastActionInstanceTarget = action.NewInstances
	state.LastActionStartTime = startTime
	state.ScaleEvent = history

	err = m.stateDB.SaveScalingState(state)
	if err != nil {
		logger.Error("failed-to-save-scaling-state", err)
		return false
	}
	return true
}

// SetScalingStateFailed closes the open history as FAILED. A failure that
// repeats the immediately prior one (same error code, same target count)
// collapses into the existing record instead of appending a duplicate.
func (m *StateManager) SetScalingStateFailed(action *ScalingAction, errorCode string) {
	logger := m.logger.Session("set-failed", lager.Data{"appId": action.AppId, "actionId": action.ActionId, "errorCode": errorCode})

	state, err := m.stateDB.GetScalingState(action.AppId)
	if err != nil {
		logger.Error("failed-to-get-scaling-state", err)
		return
	}
	if state == nil {
		state = &models.AppScalingState{AppId: action.AppId, InstanceCountState: models.ScalingStatusReady}
	}

	startTime := m.clock.Now().UnixMilli()
	endTime := startTime + 5

	lastHistory, err := m.stateDB.GetScalingHistory(state.HistoryId)
	if err != nil {
		logger.Error("failed-to-get-last-history", err)
		return
	}
	if lastHistory != nil && lastHistory.Status == models.ScalingStatusFailed &&
		errorCode == lastHistory.ErrorCode && lastHistory.Instances == action.NewInstances {
		if state.ScaleEvent != nil && state.ScaleEvent.StartTime != 0 {
			endTime = startTime
			startTime = state.ScaleEvent.StartTime
		}

		history := m.buildScalingHistory(action, models.ScalingStatusFailed, startTime, endTime, errorCode)
		history.Id = lastHistory.Id
		history.Revision = lastHistory.Revision
		err = m.stateDB.SaveScalingHistory(history)
		if err != nil {
			logger.Error("failed-to-collapse-failed-history", err)
			return
		}
		m.saveFailedState(logger, state, action, errorCode, startTime)
		return
	}

	history, err := m.stateDB.GetScalingHistory(action.ActionId)
	if err != nil {
		logger.Error("failed-to-get-history", err)
		return
	}
	if history == nil {
		history = state.ScaleEvent
	}

	if history != nil {
		if history.Id != action.ActionId {
			// a newer action owns the open history; leave it alone
			return
		}
		history.Status = models.ScalingStatusFailed
		history.EndTime = endTime
		history.Instances = action.NewInstances
		history.ErrorCode = errorCode
		err = m.stateDB.SaveScalingHistory(history)
		if err != nil {
			logger.Error("failed-to-save-failed-history", err)
			return
		}
		state.HistoryId = action.ActionId
	} else {
		logger.Error("failed-to-find-history-for-failed-action", nil)
	}

	m.saveFailedState(logger, state, action, errorCode, startTime)
}

func (m *StateManager) saveFailedState(logger lager.Logger, state *models.AppScalingState, action *ScalingAction, errorCode string, startTime int64) {
	state.InstanceCountState = models.ScalingStatusFailed
	state.LastActionTriggerId = action.TriggerId
	state.LastActionInstanceTarget = action.NewInstances
	state.LastActionStartTime = startTime
	state.LastActionEndTime = m.clock.Now().UnixMilli()
	state.ErrorCode = errorCode
	state.ScaleEvent = nil

	err := m.stateDB.SaveScalingState(state)
	if err != nil {
		logger.Error("failed-to-save-scaling-state", err)
	}
}

// SetScalingStateCompleted closes the open history as COMPLETED, but only
// when its id still matches actionId, guarding against a stale monitor task
// racing a newer action.
func (m *StateManager) SetScalingStateCompleted(appId string, actionId string) error {
	logger := m.logger.Session("set-completed", lager.Data{"appId": appId, "actionId": actionId})
	endTime := m.clock.Now().UnixMilli()

	state, err := m.stateDB.GetScalingState(appId)
	if err != nil {
		logger.Error("failed-to-get-scaling-state", err)
		return err
	}
	if state == nil {
		logger.Error("scaling-state-not-found", nil)
		return nil
	}

	history, err := m.stateDB.GetScalingHistory(actionId)
	if err != nil {
		logger.Error("failed-to-get-history", err)
		return err
	}
	if history != nil && history.Status == models.ScalingStatusFailed {
		return nil
	}
	if history == nil {
		history = state.ScaleEvent
	}

	if history != nil {
		if history.Id != actionId {
			return nil
		}
		history.Status = models.ScalingStatusCompleted
		history.EndTime = endTime
		err = m.stateDB.SaveScalingHistory(history)
		if err != nil {
			logger.Error("failed-to-save-completed-history", err)
			return err
		}
		state.HistoryId = actionId
	} else {
		logger.Error("failed-to-find-history-for-completed-action", nil)
	}

	state.InstanceCountState = models.ScalingStatusCompleted
	state.LastActionEndTime = endTime
	state.ScaleEvent = nil

	err = m.stateDB.SaveScalingState(state)
	if err != nil {
		logger.Error("failed-to-save-scaling-state", err)
		return err
	}
	return nil
}

// CorrectStateOnStart reconciles an application left with an open scale
// event by a crash: the live cloud instance count decides whether the
// action is closed as COMPLETED (target reached) or FAILED. After it runs
// no application remains stuck in REALIZING.
func (m *StateManager) CorrectStateOnStart(appId string) {
	logger := m.logger.Session("correct-state-on-start", lager.Data{"appId": appId})

	state, err := m.stateDB.GetScalingState(appId)
	if err != nil {
		logger.Error("failed-to-get-scaling-state", err)
		return
	}
	if state == nil || state.ScaleEvent == nil {
		return
	}

	instances, err := m.instanceClient.GetInstanceCount(appId)
	if err != nil {
		logger.Error("failed-to-get-instance-count", err)
		return
	}

	history, err := m.stateDB.GetScalingHistory(state.ScaleEvent.Id)
	if err != nil {
		logger.Error("failed-to-get-open-history", err)
		return
	}
	if history == nil {
		history = state.ScaleEvent
	}

	now := m.clock.Now().UnixMilli()
	if instances != history.Instances {
		history.Status = models.ScalingStatusFailed
		history.ErrorCode = cloud.ErrorCodeInternal
		history.Instances = instances
		history.EndTime = history.StartTime + 5

		err = m.stateDB.SaveScalingHistory(history)
		if err != nil {
			logger.Error("failed-to-save-failed-history", err)
			return
		}

		state.HistoryId = history.Id
		state.InstanceCountState = models.ScalingStatusFailed
		state.LastActionInstanceTarget = instances
		state.LastActionStartTime = now
		state.ErrorCode = cloud.ErrorCodeInternal
		state.ScaleEvent = nil
	} else {
		history.Status = models.ScalingStatusCompleted
		history.EndTime = history.StartTime + 20

		err = m.stateDB.SaveScalingHistory(history)
		if err != nil {
			logger.Error("failed-to-save-completed-history", err)
			return
		}

		state.HistoryId = history.Id
		state.InstanceCountState = models.ScalingStatusCompleted
		state.LastActionEndTime = now
		state.ScaleEvent = nil
	}

	err = m.stateDB.SaveScalingState(state)
	if err != nil {
		logger.Error("failed-to-save-scaling-state", err)
	}
	logger.Info("reconciled", lager.Data{"state": state.InstanceCountState.String(), "instances": instances})
}

func (m *StateManager) buildScalingHistory(action *ScalingAction, status models.ScalingStatus, startTime int64, endTime int64, errorCode string) *models.ScalingHistory {
	history := &models.ScalingHistory{
		AppId:             action.AppId,
		Status:            status,
		Adjustment:        action.NewInstances - action.CurrentInstances,
		Instances:         action.NewInstances,
		StartTime:         startTime,
		EndTime:           endTime,
		ThresholdType:     action.TriggerId,
		TriggerType:       action.TriggerType,
		ErrorCode:         errorCode,
		ScheduleType:      action.ScheduleType,
		TimeZone:          action.TimeZone,
		ScheduleStartTime: action.ScheduleStartTime,
		DayOfWeek:         action.DayOfWeek,
	}
	if action.Trigger != nil {
		history.MetricName = action.Trigger.MetricType
		history.Threshold = action.Trigger.Threshold(action.TriggerId)
		history.BreachDurationSecs = action.Trigger.BreachDurationSecs
	}
	return history
}
