package engine

import (
	"sync"
	"time"

	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// EventManager is the intake gate for trigger events. It deduplicates
// bursts of the same (application, trigger) pair while one is still
// pending, and fans accepted events out to a fixed pool of workers. Each
// application gets a lazily created handler that serializes its events.
type EventManager struct {
	logger       lager.Logger
	clock        clock.Clock
	scaleManager *AppScaleManager
	eventTimeout time.Duration
	workerCount  int

	queue    chan models.TriggerEvent
	doneChan chan bool

	pendingLock sync.Mutex
	pending     map[string]bool

	handlerLock sync.RWMutex
	handlers    map[string]*appEventHandler
}

func NewEventManager(logger lager.Logger, clock clock.Clock, scaleManager *AppScaleManager, eventTimeout time.Duration, workerCount int, queueSize int) *EventManager {
	return &EventManager{
		logger:       logger.Session("event-manager"),
		clock:        clock,
		scaleManager: scaleManager,
		eventTimeout: eventTimeout,
		workerCount:  workerCount,
		queue:        make(chan models.TriggerEvent, queueSize),
		doneChan:     make(chan bool),
		pending:      map[string]bool{},
		handlers:     map[string]*appEventHandler{},
	}
}

func (m *EventManager) Start() {
	for i := 0; i < m.workerCount; i++ {
		go m.work()
	}
	m.logger.Info("started", lager.Data{"workerCount": m.workerCount})
}

func (m *EventManager) Stop() {
	close(m.doneChan)
	m.logger.Info("stopped")
}

// SubmitTriggerEvent queues an event for processing. It returns false when
// an event for the same application and trigger is already pending or the
// queue is full; the caller treats both as "accepted earlier, drop this one".
func (m *EventManager) SubmitTriggerEvent(event models.TriggerEvent) bool {
	key := event.AppId + ":" + event.TriggerId

	m.pendingLock.Lock()
	if m.pending[key] {
		m.pendingLock.Unlock()
		m.logger.Debug("dropping-duplicate-trigger-event", lager.Data{"appId": event.AppId, "triggerId": event.TriggerId})
		return false
	}
	m.pending[key] = true
	m.pendingLock.Unlock()

	select {
	case m.queue <- event:
		return true
	default:
		m.clearPending(key)
		m.logger.Error("dropping-trigger-event-queue-full", nil, lager.Data{"appId": event.AppId, "triggerId": event.TriggerId})
		return false
	}
}

func (m *EventManager) work() {
	for {
		select {
		case <-m.doneChan:
			return
		case event := <-m.queue:
			m.process(event)
		}
	}
}

// process hands the event to the application's handler and always clears the
// pending mark afterwards, whatever the outcome, so the next breach for the
// same trigger can get in.
func (m *EventManager) process(event models.TriggerEvent) {
	defer m.clearPending(event.AppId + ":" + event.TriggerId)
	m.handlerFor(event.AppId).Handle(event)
}

func (m *EventManager) handlerFor(appId string) *appEventHandler {
	m.handlerLock.RLock()
	handler, ok := m.handlers[appId]
	m.handlerLock.RUnlock()
	if ok {
		return handler
	}

	m.handlerLock.Lock()
	defer m.handlerLock.Unlock()
	handler, ok = m.handlers[appId]
	if !ok {
		handler = newAppEventHandler(m.logger, appId, m.scaleManager, m.clock, m.eventTimeout)
		m.handlers[appId] = handler
	}
	return handler
}

func (m *EventManager) clearPending(key string) {
	m.pendingLock.Lock()
	delete(m.pending, key)
	m.pendingLock.Unlock()
}
