package models_test

import (
	. "code.cloudfoundry.org/scalingengine/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scaling", func() {
	Describe("ScalingStatus", func() {
		It("names every lifecycle state", func() {
			Expect(ScalingStatusReady.String()).To(Equal("READY"))
			Expect(ScalingStatusRealizing.String()).To(Equal("REALIZING"))
			Expect(ScalingStatusCompleted.String()).To(Equal("COMPLETED"))
			Expect(ScalingStatusFailed.String()).To(Equal("FAILED"))
			Expect(ScalingStatus(42).String()).To(Equal("UNKNOWN"))
		})
	})

	Describe("HistoryFilter", func() {
		DescribeTable("MatchesScaleType",
			func(scaleType string, adjustment int, expected bool) {
				filter := HistoryFilter{ScaleType: scaleType}
				Expect(filter.MatchesScaleType(adjustment)).To(Equal(expected))
			},
			Entry("scale_in matches a negative adjustment", ScaleTypeIn, -1, true),
			Entry("scale_in rejects a positive adjustment", ScaleTypeIn, 2, false),
			Entry("scale_in rejects a zero adjustment", ScaleTypeIn, 0, false),
			Entry("scale_out matches a positive adjustment", ScaleTypeOut, 2, true),
			Entry("scale_out rejects a negative adjustment", ScaleTypeOut, -1, false),
			Entry("no direction matches anything", "", 0, true),
		)
	})
})
