package engine

import (
	"time"

	"code.cloudfoundry.org/scalingengine/fakes"
	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/clock/fakeclock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager/v3/lagertest"
)

var _ = Describe("appEventHandler", func() {
	const (
		testAppId    = "an-app-id"
		eventTimeout = 10 * time.Minute
	)

	var (
		policyDB       *fakes.FakePolicyDB
		instanceClient *fakes.FakeInstanceClient
		fclock         *fakeclock.FakeClock
		handler        *appEventHandler
		event          models.TriggerEvent
	)

	BeforeEach(func() {
		policyDB = &fakes.FakePolicyDB{}
		stateDB := &fakes.FakeScalingStateDB{}
		instanceClient = &fakes.FakeInstanceClient{}
		fclock = fakeclock.NewFakeClock(time.Unix(10000, 0))

		logger := lagertest.NewTestLogger("event-handler")
		stateManager := NewStateManager(logger, stateDB, instanceClient, fclock)
		scaleManager := NewAppScaleManager(logger, policyDB, stateDB, instanceClient, stateManager, &noopMonitor{}, fclock, eventTimeout)
		handler = newAppEventHandler(logger, testAppId, scaleManager, fclock, eventTimeout)

		event = models.TriggerEvent{
			AppId:      testAppId,
			TriggerId:  models.TriggerIdUpperThreshold,
			MetricType: "memoryused",
		}
	})

	Describe("Handle", func() {
		Context("after a successful scaling action", func() {
			BeforeEach(func() {
				policyDB.GetAppPolicyReturns(&models.Policy{
					InstanceMinCount: 1,
					InstanceMaxCount: 10,
					PolicyTriggers: []*models.PolicyTrigger{
						{
							MetricType:            "memoryused",
							InstanceStepCountDown: -1,
							InstanceStepCountUp:   1,
							StepDownCoolDownSecs:  300,
							StepUpCoolDownSecs:    120,
						},
					},
				}, nil)
				instanceClient.GetInstanceCountReturns(4, nil)
				handler.Handle(event)
				Expect(policyDB.GetAppPolicyCallCount()).To(Equal(1))
			})

			It("drops further events until the approximate cool-down expires", func() {
				handler.Handle(event)
				Expect(policyDB.GetAppPolicyCallCount()).To(Equal(1))

				fclock.Increment(121 * time.Second)
				handler.Handle(event)
				Expect(policyDB.GetAppPolicyCallCount()).To(Equal(2))
			})
		})

		Context("when the event is discarded without scaling", func() {
			It("does not start a cool-down", func() {
				handler.Handle(event)
				handler.Handle(event)
				Expect(policyDB.GetAppPolicyCallCount()).To(Equal(2))
			})
		})
	})

	Describe("acquire", func() {
		It("admits only one event at a time", func() {
			Expect(handler.acquire()).To(BeTrue())
			Expect(handler.acquire()).To(BeFalse())
		})

		It("frees the busy flag when released", func() {
			Expect(handler.acquire()).To(BeTrue())
			handler.release(nil)
			Expect(handler.acquire()).To(BeTrue())
		})

		It("self-releases a busy flag stuck past the event timeout", func() {
			Expect(handler.acquire()).To(BeTrue())

			fclock.Increment(eventTimeout + time.Second)
			Expect(handler.acquire()).To(BeTrue())
		})
	})
})

type noopMonitor struct{}

func (m *noopMonitor) AddTask(models.MonitorTask) {}
