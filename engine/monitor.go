package engine

import (
	"sync"
	"time"

	"code.cloudfoundry.org/scalingengine/cloud"
	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// StateMonitor polls the cloud until each issued scaling action converges,
// then closes it as COMPLETED. Convergence means the running instance count
// has caught up with the desired count the cloud reports, so an action whose
// target was since overridden still closes once the cloud settles.
// Tasks are keyed by application, so a newer
// action for the same application replaces the older task; the stale
// completion is rejected by the actionId guard in the state machine anyway.
// A task for a deleted application is dropped, any other poll failure leaves
// the task in place for the next tick.
type StateMonitor struct {
	logger         lager.Logger
	clock          clock.Clock
	interval       time.Duration
	instanceClient cloud.InstanceClient
	stateManager   *StateManager

	doneChan chan bool
	lock     sync.Mutex
	tasks    map[string]models.MonitorTask
}

func NewStateMonitor(logger lager.Logger, clock clock.Clock, interval time.Duration, instanceClient cloud.InstanceClient, stateManager *StateManager) *StateMonitor {
	return &StateMonitor{
		logger:         logger.Session("state-monitor"),
		clock:          clock,
		interval:       interval,
		instanceClient: instanceClient,
		stateManager:   stateManager,
		doneChan:       make(chan bool),
		tasks:          map[string]models.MonitorTask{},
	}
}

func (m *StateMonitor) AddTask(task models.MonitorTask) {
	m.lock.Lock()
	m.tasks[task.AppId] = task
	m.lock.Unlock()
}

func (m *StateMonitor) Start() {
	go m.startCheck()
	m.logger.Info("started", lager.Data{"interval": m.interval.String()})
}

func (m *StateMonitor) Stop() {
	close(m.doneChan)
	m.logger.Info("stopped")
}

func (m *StateMonitor) startCheck() {
	ticker := m.clock.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.doneChan:
			return
		case <-ticker.C():
			m.checkTasks()
		}
	}
}

func (m *StateMonitor) checkTasks() {
	m.lock.Lock()
	pending := make([]models.MonitorTask, 0, len(m.tasks))
	for _, task := range m.tasks {
		pending = append(pending, task)
	}
	m.lock.Unlock()

	for _, task := range pending {
		m.checkTask(task)
	}
}

func (m *StateMonitor) checkTask(task models.MonitorTask) {
	logger := m.logger.Session("check-task", lager.Data{"appId": task.AppId, "actionId": task.ActionId, "target": task.TargetInstanceCount})

	running, err := m.instanceClient.GetRunningInstanceCount(task.AppId)
	if err != nil {
		if cloud.IsNotFound(err) {
			logger.Info("app-not-found-dropping-task")
			m.removeTask(task)
			return
		}
		logger.Error("failed-to-get-running-instance-count", err)
		return
	}

	desired, err := m.instanceClient.GetInstanceCount(task.AppId)
	if err != nil {
		if cloud.IsNotFound(err) {
			logger.Info("app-not-found-dropping-task")
			m.removeTask(task)
			return
		}
		logger.Error("failed-to-get-instance-count", err)
		return
	}

	if running != desired {
		return
	}

	err = m.stateManager.SetScalingStateCompleted(task.AppId, task.ActionId)
	if err != nil {
		logger.Error("failed-to-complete-scaling-state", err)
		return
	}
	m.removeTask(task)
	logger.Info("scaling-action-converged")
}

func (m *StateMonitor) removeTask(task models.MonitorTask) {
	m.lock.Lock()
	if current, ok := m.tasks[task.AppId]; ok && current.ActionId == task.ActionId {
		delete(m.tasks, task.AppId)
	}
	m.lock.Unlock()
}
