package engine

import (
	"sync"
	"time"

	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// appEventHandler serializes trigger handling for one application. It keeps
// two cheap local filters in front of the decision engine: an approximate
// cool-down stamp from the last successful action, and a busy flag so only
// one event per application is ever in flight. The busy flag self-releases
// after the event timeout in case a scaling attempt never returns.
type appEventHandler struct {
	logger       lager.Logger
	appId        string
	scaleManager *AppScaleManager
	clock        clock.Clock
	eventTimeout time.Duration

	lock                 sync.Mutex
	busy                 bool
	busySince            int64
	lastActionTimestamp  int64
	approxCoolDownMillis int64
}

func newAppEventHandler(logger lager.Logger, appId string, scaleManager *AppScaleManager, clock clock.Clock, eventTimeout time.Duration) *appEventHandler {
	return &appEventHandler{
		logger:       logger.Session("event-handler", lager.Data{"appId": appId}),
		appId:        appId,
		scaleManager: scaleManager,
		clock:        clock,
		eventTimeout: eventTimeout,
	}
}

func (h *appEventHandler) Handle(event models.TriggerEvent) {
	if !h.acquire() {
		return
	}

	result, err := h.scaleManager.DoScaleByTrigger(event)
	if err != nil {
		h.logger.Error("failed-to-scale-by-trigger", err, lager.Data{"triggerId": event.TriggerId})
	}
	h.release(result)
}

func (h *appEventHandler) acquire() bool {
	h.lock.Lock()
	defer h.lock.Unlock()

	now := h.clock.Now().UnixMilli()
	if now < h.lastActionTimestamp+h.approxCoolDownMillis {
		h.logger.Debug("dropping-event-in-approximate-cool-down")
		return false
	}
	if h.busy {
		if now-h.busySince <= h.eventTimeout.Milliseconds() {
			h.logger.Debug("dropping-event-handler-busy")
			return false
		}
		h.logger.Info("releasing-stuck-busy-flag", lager.Data{"busySince": h.busySince})
	}
	h.busy = true
	h.busySince = now
	return true
}

func (h *appEventHandler) release(result *AppScalingResult) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.busy = false
	if result != nil && result.Scaled {
		h.lastActionTimestamp = h.clock.Now().UnixMilli()
		h.approxCoolDownMillis = int64(result.CoolDownSecs) * 1000
	}
}
