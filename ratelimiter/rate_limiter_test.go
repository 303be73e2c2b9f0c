package ratelimiter_test

import (
	"time"

	. "code.cloudfoundry.org/scalingengine/ratelimiter"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager/v3/lagertest"
)

var _ = Describe("RateLimiter", func() {
	const (
		maxAmount      = 2
		validDuration  = 1 * time.Second
		expireDuration = 5 * time.Minute
	)

	var limiter *RateLimiter

	BeforeEach(func() {
		limiter = NewRateLimiter(maxAmount, validDuration, expireDuration, lagertest.NewTestLogger("rate-limiter"))
	})

	Describe("ExceedsLimit", func() {
		It("allows a burst up to the maximum and then denies", func() {
			Expect(limiter.ExceedsLimit("an-app-id")).To(BeFalse())
			Expect(limiter.ExceedsLimit("an-app-id")).To(BeFalse())
			Expect(limiter.ExceedsLimit("an-app-id")).To(BeTrue())
		})

		It("tracks each key separately", func() {
			Expect(limiter.ExceedsLimit("an-app-id")).To(BeFalse())
			Expect(limiter.ExceedsLimit("an-app-id")).To(BeFalse())
			Expect(limiter.ExceedsLimit("an-app-id")).To(BeTrue())

			Expect(limiter.ExceedsLimit("another-app-id")).To(BeFalse())
		})

		It("refills the bucket over time", func() {
			Expect(limiter.ExceedsLimit("an-app-id")).To(BeFalse())
			Expect(limiter.ExceedsLimit("an-app-id")).To(BeFalse())
			Expect(limiter.ExceedsLimit("an-app-id")).To(BeTrue())

			Eventually(func() bool {
				return limiter.ExceedsLimit("an-app-id")
			}, validDuration+500*time.Millisecond, 100*time.Millisecond).Should(BeFalse())
		})
	})

	Describe("GetStats", func() {
		It("reports the remaining capacity per key", func() {
			Expect(limiter.ExceedsLimit("an-app-id")).To(BeFalse())

			stats := limiter.GetStats()
			Expect(stats).To(HaveLen(1))
			Expect(stats[0].Key).To(Equal("an-app-id"))
			Expect(stats[0].Available).To(BeNumerically("<", maxAmount))
		})
	})
})
