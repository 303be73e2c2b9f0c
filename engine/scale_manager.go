package engine

import (
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/scalingengine/cloud"
	"code.cloudfoundry.org/scalingengine/db"
	"code.cloudfoundry.org/scalingengine/helpers"
	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// ScalingMonitor receives a task for every successfully issued scaling
// action and tracks it to convergence.
type ScalingMonitor interface {
	AddTask(task models.MonitorTask)
}

// AppScalingResult is what a completed scaling attempt reports back to the
// caller. CoolDownSecs is the shorter of the trigger's two cool-down
// settings; event handlers use it to pre-filter events without a store read.
type AppScalingResult struct {
	AppId        string `json:"app_id"`
	ActionId     string `json:"action_id,omitempty"`
	Scaled       bool   `json:"scaled"`
	Adjustment   int    `json:"adjustment"`
	NewInstances int    `json:"new_instances"`
	CoolDownSecs int    `json:"-"`
}

// AppScaleManager is the scaling decision engine. Each call loads the
// application's policy, validates cool-down and instance bounds, computes
// the new instance count and drives the action through the state machine.
type AppScaleManager struct {
	logger         lager.Logger
	policyDB       db.PolicyDB
	stateDB        db.ScalingStateDB
	instanceClient cloud.InstanceClient
	stateManager   *StateManager
	monitor        ScalingMonitor
	clock          clock.Clock
	eventTimeout   time.Duration
}

func NewAppScaleManager(logger lager.Logger, policyDB db.PolicyDB, stateDB db.ScalingStateDB, instanceClient cloud.InstanceClient,
	stateManager *StateManager, monitor ScalingMonitor, clock clock.Clock, eventTimeout time.Duration) *AppScaleManager {
	return &AppScaleManager{
		logger:         logger.Session("scale-manager"),
		policyDB:       policyDB,
		stateDB:        stateDB,
		instanceClient: instanceClient,
		stateManager:   stateManager,
		monitor:        monitor,
		clock:          clock,
		eventTimeout:   eventTimeout,
	}
}

// DoScaleByTrigger handles one threshold breach event. A nil result with a
// nil error means the event was discarded by validation (no policy, no
// matching rule, cool-down in force, or instance count already at bound).
func (m *AppScaleManager) DoScaleByTrigger(event models.TriggerEvent) (*AppScalingResult, error) {
	logger := m.logger.Session("scale-by-trigger", lager.Data{"appId": event.AppId, "triggerId": event.TriggerId, "metricType": event.MetricType})

	policy, err := m.policyDB.GetAppPolicy(event.AppId)
	if err != nil {
		if errors.Is(err, db.ErrDoesNotExist) {
			logger.Info("no-policy-for-app")
			return nil, nil
		}
		logger.Error("failed-to-get-app-policy", err)
		return nil, err
	}
	if policy == nil {
		logger.Info("no-policy-for-app")
		return nil, nil
	}

	trigger := policy.TriggerForMetric(event.MetricType)
	if trigger == nil {
		logger.Info("no-trigger-for-metric")
		return nil, nil
	}

	ok, err := m.validateCoolDown(logger, event.AppId, event.TriggerId, trigger)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Info("cool-down-in-force")
		return nil, nil
	}

	currentInstances, err := m.instanceClient.GetInstanceCount(event.AppId)
	if err != nil {
		logger.Error("failed-to-get-instance-count", err)
		return nil, err
	}

	if !validateInstanceCounts(currentInstances, event.TriggerId, policy) {
		logger.Info("instance-count-at-bound", lager.Data{"instances": currentInstances})
		return nil, nil
	}

	newInstances := calculateNewInstanceCount(currentInstances, event.TriggerId, trigger, policy)
	if newInstances == currentInstances {
		logger.Info("no-instance-count-change", lager.Data{"instances": currentInstances})
		return nil, nil
	}

	action := &ScalingAction{
		AppId:            event.AppId,
		TriggerId:        event.TriggerId,
		CurrentInstances: currentInstances,
		NewInstances:     newInstances,
		Trigger:          trigger,
		TriggerType:      models.TriggerTypeMonitorEvent,
	}
	result, err := m.scale(logger, action)
	if err != nil {
		return result, err
	}
	result.CoolDownSecs = min(trigger.StepDownCoolDownSecs, trigger.StepUpCoolDownSecs)
	return result, nil
}

// DoScaleBySchedule forces the application's instance count back into the
// schedule window now in force. It skips cool-down validation entirely: a
// schedule boundary must take effect on time regardless of recent activity.
func (m *AppScaleManager) DoScaleBySchedule(appId string) (*AppScalingResult, error) {
	logger := m.logger.Session("scale-by-schedule", lager.Data{"appId": appId})

	policy, err := m.policyDB.GetAppPolicy(appId)
	if err != nil {
		if errors.Is(err, db.ErrDoesNotExist) {
			logger.Info("no-policy-for-app")
			return nil, nil
		}
		logger.Error("failed-to-get-app-policy", err)
		return nil, err
	}
	if policy == nil {
		logger.Info("no-policy-for-app")
		return nil, nil
	}

	currentInstances, err := m.instanceClient.GetInstanceCount(appId)
	if err != nil {
		logger.Error("failed-to-get-instance-count", err)
		return nil, err
	}

	instanceMin := policy.EffectiveInstanceMinCount()
	instanceMax := policy.EffectiveInstanceMaxCount()
	if currentInstances >= instanceMin && currentInstances <= instanceMax {
		logger.Info("instance-count-within-schedule-window", lager.Data{"instances": currentInstances, "min": instanceMin, "max": instanceMax})
		return nil, nil
	}

	newInstances := currentInstances
	if newInstances < instanceMin {
		newInstances = instanceMin
	} else if newInstances > instanceMax {
		newInstances = instanceMax
	}

	dayOfWeek := 0
	if policy.CurrentScheduleType == models.ScheduleTypeRecurring {
		dayOfWeek = isoDayOfWeek(m.clock.Now())
	}

	action := &ScalingAction{
		AppId:             appId,
		CurrentInstances:  currentInstances,
		NewInstances:      newInstances,
		TriggerType:       models.TriggerTypePolicyChanged,
		ScheduleType:      policy.CurrentScheduleType,
		TimeZone:          policy.Timezone,
		ScheduleStartTime: policy.CurrentScheduleStartTime,
		DayOfWeek:         dayOfWeek,
	}
	return m.scale(logger, action)
}

// validateCoolDown applies the trigger-path cool-down law. An action still
// in flight blocks new events until the event timeout elapses; a finished
// action blocks them until its directional cool-down expires.
func (m *AppScaleManager) validateCoolDown(logger lager.Logger, appId string, triggerId string, trigger *models.PolicyTrigger) (bool, error) {
	state, err := m.stateDB.GetScalingState(appId)
	if err != nil {
		logger.Error("failed-to-get-scaling-state", err)
		return false, err
	}
	if state == nil {
		return true, nil
	}

	now := m.clock.Now().UnixMilli()
	if state.InstanceCountState != models.ScalingStatusCompleted && state.InstanceCountState != models.ScalingStatusFailed {
		return now-state.LastActionStartTime > m.eventTimeout.Milliseconds(), nil
	}
	return now >= state.LastActionEndTime+int64(trigger.CoolDownSecs(triggerId))*1000, nil
}

// isoDayOfWeek numbers the days Monday through Sunday as 1 through 7.
func isoDayOfWeek(t time.Time) int {
	if wd := t.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

func validateInstanceCounts(currentInstances int, triggerId string, policy *models.Policy) bool {
	if triggerId == models.TriggerIdLowerThreshold {
		return currentInstances > policy.EffectiveInstanceMinCount()
	}
	return currentInstances < policy.EffectiveInstanceMaxCount()
}

// calculateNewInstanceCount applies the trigger's step to the current count.
// A percentage step too small to move at least one instance is rounded away
// from zero so a breach always produces movement, then the result is clamped
// to the effective bounds.
func calculateNewInstanceCount(currentInstances int, triggerId string, trigger *models.PolicyTrigger, policy *models.Policy) int {
	step := trigger.Step(triggerId)
	adjustment := step
	if trigger.AdjustmentType(triggerId) == models.AdjustmentChangePercentage {
		adjustment = step * currentInstances / 100
		if adjustment == 0 {
			if triggerId == models.TriggerIdLowerThreshold {
				adjustment = -1
			} else {
				adjustment = 1
			}
		}
	}

	newInstances := currentInstances + adjustment
	if newInstances < policy.EffectiveInstanceMinCount() {
		newInstances = policy.EffectiveInstanceMinCount()
	}
	if newInstances > policy.EffectiveInstanceMaxCount() {
		newInstances = policy.EffectiveInstanceMaxCount()
	}
	return newInstances
}

// scale drives a validated action through the state machine: record the
// intent first, then mutate the cloud, then hand convergence tracking to the
// monitor. If the intent cannot be recorded the cloud is never touched.
func (m *AppScaleManager) scale(logger lager.Logger, action *ScalingAction) (*AppScalingResult, error) {
	actionId, err := helpers.GenerateGUID()
	if err != nil {
		logger.Error("failed-to-generate-action-id", err)
		return nil, err
	}
	action.ActionId = actionId
	logger = logger.Session("scale", lager.Data{"actionId": actionId, "current": action.CurrentInstances, "new": action.NewInstances})

	if !m.stateManager.SetScalingStateRealizing(action) {
		logger.Error("failed-to-record-scaling-intent", nil)
		return nil, fmt.Errorf("failed to record scaling intent for app %s", action.AppId)
	}

	err = m.instanceClient.SetInstanceCount(action.AppId, action.NewInstances)
	if err != nil {
		logger.Error("failed-to-set-instance-count", err)
		m.stateManager.SetScalingStateFailed(action, cloud.ClassifyErrorCode(err))
		return &AppScalingResult{AppId: action.AppId, ActionId: actionId}, err
	}

	m.monitor.AddTask(models.MonitorTask{
		AppId:               action.AppId,
		TargetInstanceCount: action.NewInstances,
		ActionId:            actionId,
	})
	logger.Info("scaling-issued")

	return &AppScalingResult{
		AppId:        action.AppId,
		ActionId:     actionId,
		Scaled:       true,
		Adjustment:   action.NewInstances - action.CurrentInstances,
		NewInstances: action.NewInstances,
	}, nil
}
