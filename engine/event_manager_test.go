package engine_test

import (
	"time"

	. "code.cloudfoundry.org/scalingengine/engine"
	"code.cloudfoundry.org/scalingengine/fakes"
	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/clock/fakeclock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager/v3/lagertest"
)

var _ = Describe("EventManager", func() {
	const eventTimeout = 10 * time.Minute

	var (
		policyDB     *fakes.FakePolicyDB
		eventManager *EventManager
		event        models.TriggerEvent
		queueSize    int
	)

	BeforeEach(func() {
		queueSize = 10
	})

	JustBeforeEach(func() {
		policyDB = &fakes.FakePolicyDB{}
		stateDB := &fakes.FakeScalingStateDB{}
		instanceClient := &fakes.FakeInstanceClient{}
		fclock := fakeclock.NewFakeClock(time.Unix(10000, 0))

		logger := lagertest.NewTestLogger("event-manager")
		stateManager := NewStateManager(logger, stateDB, instanceClient, fclock)
		scaleManager := NewAppScaleManager(logger, policyDB, stateDB, instanceClient, stateManager, &recordingMonitor{}, fclock, eventTimeout)
		eventManager = NewEventManager(logger, fclock, scaleManager, eventTimeout, 2, queueSize)

		event = models.TriggerEvent{
			AppId:      "an-app-id",
			TriggerId:  models.TriggerIdUpperThreshold,
			MetricType: "memoryused",
		}
	})

	Describe("SubmitTriggerEvent", func() {
		Context("before the workers have picked the event up", func() {
			It("drops a duplicate for the same application and trigger", func() {
				Expect(eventManager.SubmitTriggerEvent(event)).To(BeTrue())
				Expect(eventManager.SubmitTriggerEvent(event)).To(BeFalse())
			})

			It("accepts an event for the other trigger direction", func() {
				Expect(eventManager.SubmitTriggerEvent(event)).To(BeTrue())

				lowerEvent := event
				lowerEvent.TriggerId = models.TriggerIdLowerThreshold
				Expect(eventManager.SubmitTriggerEvent(lowerEvent)).To(BeTrue())
			})
		})

		Context("when the queue is full", func() {
			BeforeEach(func() {
				queueSize = 1
			})

			It("drops the event and clears its pending mark", func() {
				Expect(eventManager.SubmitTriggerEvent(event)).To(BeTrue())

				otherEvent := models.TriggerEvent{
					AppId:      "another-app-id",
					TriggerId:  models.TriggerIdUpperThreshold,
					MetricType: "memoryused",
				}
				Expect(eventManager.SubmitTriggerEvent(otherEvent)).To(BeFalse())
				Expect(eventManager.SubmitTriggerEvent(otherEvent)).To(BeFalse())
			})
		})
	})

	Describe("processing", func() {
		JustBeforeEach(func() {
			eventManager.Start()
		})

		AfterEach(func() {
			eventManager.Stop()
		})

		It("hands the event to the decision engine", func() {
			Expect(eventManager.SubmitTriggerEvent(event)).To(BeTrue())

			Eventually(policyDB.GetAppPolicyCallCount).Should(Equal(1))
			Expect(policyDB.GetAppPolicyArgsForCall(0)).To(Equal("an-app-id"))
		})

		It("accepts the same trigger again once processing has finished", func() {
			Expect(eventManager.SubmitTriggerEvent(event)).To(BeTrue())

			Eventually(func() bool {
				return eventManager.SubmitTriggerEvent(event)
			}).Should(BeTrue())
		})
	})
})
