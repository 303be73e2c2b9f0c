package models_test

import (
	. "code.cloudfoundry.org/scalingengine/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Policy", func() {
	var trigger *PolicyTrigger

	BeforeEach(func() {
		trigger = &PolicyTrigger{
			MetricType:             "memoryused",
			LowerThreshold:         30,
			UpperThreshold:         80,
			InstanceStepCountDown:  -2,
			InstanceStepCountUp:    3,
			StepDownCoolDownSecs:   300,
			StepUpCoolDownSecs:     120,
			ScaleInAdjustmentType:  AdjustmentChangeCount,
			ScaleOutAdjustmentType: AdjustmentChangePercentage,
		}
	})

	Describe("PolicyTrigger", func() {
		It("selects the step by trigger direction", func() {
			Expect(trigger.Step(TriggerIdLowerThreshold)).To(Equal(-2))
			Expect(trigger.Step(TriggerIdUpperThreshold)).To(Equal(3))
		})

		It("selects the cool-down by trigger direction", func() {
			Expect(trigger.CoolDownSecs(TriggerIdLowerThreshold)).To(Equal(300))
			Expect(trigger.CoolDownSecs(TriggerIdUpperThreshold)).To(Equal(120))
		})

		It("selects the threshold by trigger direction", func() {
			Expect(trigger.Threshold(TriggerIdLowerThreshold)).To(Equal(int64(30)))
			Expect(trigger.Threshold(TriggerIdUpperThreshold)).To(Equal(int64(80)))
		})

		It("selects the adjustment type by trigger direction", func() {
			Expect(trigger.AdjustmentType(TriggerIdLowerThreshold)).To(Equal(AdjustmentChangeCount))
			Expect(trigger.AdjustmentType(TriggerIdUpperThreshold)).To(Equal(AdjustmentChangePercentage))
		})
	})

	Describe("effective instance bounds", func() {
		var policy *Policy

		BeforeEach(func() {
			policy = &Policy{InstanceMinCount: 1, InstanceMaxCount: 10}
		})

		It("uses the policy bounds when no schedule window is active", func() {
			Expect(policy.EffectiveInstanceMinCount()).To(Equal(1))
			Expect(policy.EffectiveInstanceMaxCount()).To(Equal(10))
		})

		It("uses the schedule window bounds when one is active", func() {
			policy.CurrentInstanceMinCount = 5
			policy.CurrentInstanceMaxCount = 8
			Expect(policy.EffectiveInstanceMinCount()).To(Equal(5))
			Expect(policy.EffectiveInstanceMaxCount()).To(Equal(8))
		})
	})

	Describe("TriggerForMetric", func() {
		var policy *Policy

		BeforeEach(func() {
			policy = &Policy{PolicyTriggers: []*PolicyTrigger{trigger}}
		})

		It("finds the trigger for a metric", func() {
			Expect(policy.TriggerForMetric("memoryused")).To(Equal(trigger))
		})

		It("returns nil for an unknown metric", func() {
			Expect(policy.TriggerForMetric("throughput")).To(BeNil())
		})
	})
})
