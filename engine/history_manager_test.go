package engine_test

import (
	"errors"
	"time"

	. "code.cloudfoundry.org/scalingengine/engine"
	"code.cloudfoundry.org/scalingengine/fakes"
	"code.cloudfoundry.org/scalingengine/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager/v3/lagertest"
)

var _ = Describe("HistoryManager", func() {
	const testAppId = "an-app-id"

	var (
		stateDB   *fakes.FakeScalingStateDB
		manager   *HistoryManager
		filter    models.HistoryFilter
		closed    []*models.ScalingHistory
		openEvent *models.ScalingHistory
	)

	BeforeEach(func() {
		stateDB = &fakes.FakeScalingStateDB{}
		manager = NewHistoryManager(lagertest.NewTestLogger("history-manager"), stateDB, time.UTC)

		closed = []*models.ScalingHistory{
			{Id: "history-2", AppId: testAppId, Status: models.ScalingStatusCompleted, Adjustment: 1, StartTime: 2000, EndTime: 2020},
			{Id: "history-1", AppId: testAppId, Status: models.ScalingStatusFailed, Adjustment: -1, StartTime: 1000, EndTime: 1005},
		}
		stateDB.QueryScalingHistoriesReturns(closed, nil)
		stateDB.CountScalingHistoriesReturns(2, nil)

		openEvent = &models.ScalingHistory{
			Id:         "an-action-id",
			AppId:      testAppId,
			Status:     models.ScalingStatusRealizing,
			Adjustment: 2,
			MetricName: "memoryused",
			StartTime:  3000,
		}
		stateDB.GetScalingStateReturns(&models.AppScalingState{
			AppId:              testAppId,
			InstanceCountState: models.ScalingStatusRealizing,
			ScaleEvent:         openEvent,
		}, nil)

		filter = models.HistoryFilter{AppId: testAppId, MaxCount: 10}
	})

	Describe("QueryHistories", func() {
		It("prepends the open scale event on the first page", func() {
			entries, err := manager.QueryHistories(filter, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
			Expect(entries[0].Id).To(Equal("an-action-id"))
			Expect(entries[1].Id).To(Equal("history-2"))
		})

		It("shrinks the first-page store query by the open event's slot", func() {
			filter.MaxCount = 2
			_, err := manager.QueryHistories(filter, "")
			Expect(err).NotTo(HaveOccurred())
			storeFilter := stateDB.QueryScalingHistoriesArgsForCall(0)
			Expect(storeFilter.MaxCount).To(Equal(1))
			Expect(storeFilter.Offset).To(BeZero())
		})

		It("shifts later pages back by the open event's slot", func() {
			filter.Offset = 10
			entries, err := manager.QueryHistories(filter, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Id).To(Equal("history-2"))
			storeFilter := stateDB.QueryScalingHistoriesArgsForCall(0)
			Expect(storeFilter.Offset).To(Equal(9))
			Expect(storeFilter.MaxCount).To(Equal(10))
		})

		It("trims the first page back to the page size", func() {
			filter.MaxCount = 2
			entries, err := manager.QueryHistories(filter, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Id).To(Equal("an-action-id"))
			Expect(entries[1].Id).To(Equal("history-2"))
		})

		It("keeps pages contiguous across the fold", func() {
			all := []*models.ScalingHistory{
				{Id: "history-3", AppId: testAppId, Status: models.ScalingStatusCompleted, Adjustment: 1, StartTime: 2500, EndTime: 2520},
				closed[0],
				closed[1],
			}
			stateDB.QueryScalingHistoriesStub = func(f *models.HistoryFilter) ([]*models.ScalingHistory, error) {
				start := f.Offset
				if start > len(all) {
					start = len(all)
				}
				end := len(all)
				if f.MaxCount > 0 && start+f.MaxCount < end {
					end = start + f.MaxCount
				}
				return all[start:end], nil
			}

			filter.MaxCount = 2
			pageOne, err := manager.QueryHistories(filter, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(pageOne).To(HaveLen(2))
			Expect(pageOne[0].Id).To(Equal("an-action-id"))
			Expect(pageOne[1].Id).To(Equal("history-3"))

			filter.Offset = 2
			pageTwo, err := manager.QueryHistories(filter, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(pageTwo).To(HaveLen(2))
			Expect(pageTwo[0].Id).To(Equal("history-2"))
			Expect(pageTwo[1].Id).To(Equal("history-1"))
		})

		Context("when the filter selects only finished entries", func() {
			BeforeEach(func() {
				filter.Status = models.ScalingStatusCompleted
				filter.StatusSet = true
			})

			It("omits the open event", func() {
				entries, err := manager.QueryHistories(filter, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(2))
			})
		})

		Context("when the filter direction does not match the open event", func() {
			BeforeEach(func() {
				filter.ScaleType = models.ScaleTypeIn
			})

			It("omits the open event", func() {
				entries, err := manager.QueryHistories(filter, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(2))
			})
		})

		Context("when the filter metric does not match the open event", func() {
			BeforeEach(func() {
				filter.MetricName = "throughput"
			})

			It("omits the open event", func() {
				entries, err := manager.QueryHistories(filter, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(2))
			})
		})

		Context("when the open event started outside the filter range", func() {
			BeforeEach(func() {
				filter.EndTime = 2500
			})

			It("omits the open event", func() {
				entries, err := manager.QueryHistories(filter, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(2))
			})
		})

		Context("with a display time zone on the request", func() {
			It("stamps each entry with the zone offset from the engine's local zone", func() {
				entries, err := manager.QueryHistories(filter, "Asia/Shanghai")
				Expect(err).NotTo(HaveOccurred())
				for _, entry := range entries {
					Expect(entry.RawOffset).To(Equal(8 * 3600 * 1000))
				}
			})
		})

		Context("when the engine runs in a zone that observes DST", func() {
			BeforeEach(func() {
				location, err := time.LoadLocation("America/New_York")
				Expect(err).NotTo(HaveOccurred())
				manager = NewHistoryManager(lagertest.NewTestLogger("history-manager"), stateDB, location)
			})

			It("keeps the local zone's standard offset in the stamp during DST", func() {
				closed[0].StartTime = time.Date(2023, time.July, 10, 0, 0, 0, 0, time.UTC).UnixMilli()
				closed[1].StartTime = closed[0].StartTime
				openEvent.StartTime = closed[0].StartTime

				entries, err := manager.QueryHistories(filter, "Asia/Shanghai")
				Expect(err).NotTo(HaveOccurred())
				for _, entry := range entries {
					Expect(entry.RawOffset).To(Equal((-18000 + 28800 + 14400) * 1000))
				}
			})

			It("stamps the plain offset difference outside DST", func() {
				closed[0].StartTime = time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC).UnixMilli()
				closed[1].StartTime = closed[0].StartTime
				openEvent.StartTime = closed[0].StartTime

				entries, err := manager.QueryHistories(filter, "Asia/Shanghai")
				Expect(err).NotTo(HaveOccurred())
				for _, entry := range entries {
					Expect(entry.RawOffset).To(Equal((-18000 + 28800 + 18000) * 1000))
				}
			})
		})

		Context("with no display zone anywhere", func() {
			It("leaves the offsets alone", func() {
				entries, err := manager.QueryHistories(filter, "")
				Expect(err).NotTo(HaveOccurred())
				for _, entry := range entries {
					Expect(entry.RawOffset).To(BeZero())
				}
			})
		})

		Context("falling back to the zone stored on the oldest entry", func() {
			BeforeEach(func() {
				closed[1].TimeZone = "Asia/Shanghai"
			})

			It("uses that zone for the whole page", func() {
				entries, err := manager.QueryHistories(filter, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(entries[1].RawOffset).To(Equal(8 * 3600 * 1000))
			})
		})

		Context("when the store query fails", func() {
			BeforeEach(func() {
				stateDB.QueryScalingHistoriesReturns(nil, errors.New("an error"))
			})

			It("returns the error", func() {
				_, err := manager.QueryHistories(filter, "")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("CountHistories", func() {
		It("counts the open scale event in", func() {
			count, err := manager.CountHistories(filter)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(3))
		})

		Context("when no action is in flight", func() {
			BeforeEach(func() {
				stateDB.GetScalingStateReturns(&models.AppScalingState{
					AppId:              testAppId,
					InstanceCountState: models.ScalingStatusCompleted,
				}, nil)
			})

			It("returns the store count", func() {
				count, err := manager.CountHistories(filter)
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(2))
			})
		})

		Context("when the filter excludes the open event", func() {
			BeforeEach(func() {
				filter.ScaleType = models.ScaleTypeIn
			})

			It("returns the store count", func() {
				count, err := manager.CountHistories(filter)
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(2))
			})
		})
	})
})
