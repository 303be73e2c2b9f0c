package server_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/scalingengine/engine"
	"code.cloudfoundry.org/scalingengine/fakes"
	"code.cloudfoundry.org/scalingengine/models"
	. "code.cloudfoundry.org/scalingengine/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager/v3/lagertest"
)

var _ = Describe("ScalingHistoryHandler", func() {
	const testAppId = "an-app-id"

	var (
		stateDB *fakes.FakeScalingStateDB
		handler *ScalingHistoryHandler
		resp    *httptest.ResponseRecorder
		vars    map[string]string
	)

	BeforeEach(func() {
		stateDB = &fakes.FakeScalingStateDB{}
		logger := lagertest.NewTestLogger("scaling-history-handler")
		historyManager := engine.NewHistoryManager(logger, stateDB, time.UTC)
		handler = NewScalingHistoryHandler(logger, historyManager)

		resp = httptest.NewRecorder()
		vars = map[string]string{"appid": testAppId}
	})

	Describe("GetScalingHistories", func() {
		BeforeEach(func() {
			stateDB.QueryScalingHistoriesReturns([]*models.ScalingHistory{
				{Id: "history-2", AppId: testAppId, Status: models.ScalingStatusCompleted, Adjustment: 1, StartTime: 2000},
				{Id: "history-1", AppId: testAppId, Status: models.ScalingStatusFailed, Adjustment: -1, StartTime: 1000},
			}, nil)
		})

		It("returns the page as json", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/apps/an-app-id/scaling_histories?start=100&end=5000&maxcount=10", nil)
			handler.GetScalingHistories(resp, req, vars)

			Expect(resp.Code).To(Equal(http.StatusOK))
			histories := []*models.ScalingHistory{}
			Expect(json.Unmarshal(resp.Body.Bytes(), &histories)).To(Succeed())
			Expect(histories).To(HaveLen(2))
			Expect(histories[0].Id).To(Equal("history-2"))

			filter := stateDB.QueryScalingHistoriesArgsForCall(0)
			Expect(filter.AppId).To(Equal(testAppId))
			Expect(filter.StartTime).To(Equal(int64(100)))
			Expect(filter.EndTime).To(Equal(int64(5000)))
			Expect(filter.MaxCount).To(Equal(10))
		})

		It("passes the status filter through", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/apps/an-app-id/scaling_histories?status=FAILED", nil)
			handler.GetScalingHistories(resp, req, vars)

			Expect(resp.Code).To(Equal(http.StatusOK))
			filter := stateDB.QueryScalingHistoriesArgsForCall(0)
			Expect(filter.StatusSet).To(BeTrue())
			Expect(filter.Status).To(Equal(models.ScalingStatusFailed))
		})

		It("rejects an unknown status", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/apps/an-app-id/scaling_histories?status=WAITING", nil)
			handler.GetScalingHistories(resp, req, vars)

			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(resp.Body.String()).To(ContainSubstring("incorrect status parameter"))
		})

		It("rejects a non-numeric start time", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/apps/an-app-id/scaling_histories?start=yesterday", nil)
			handler.GetScalingHistories(resp, req, vars)

			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(resp.Body.String()).To(ContainSubstring("error parsing start parameter"))
		})

		It("rejects an unknown scale type", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/apps/an-app-id/scaling_histories?scaletype=scale_diagonally", nil)
			handler.GetScalingHistories(resp, req, vars)

			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(resp.Body.String()).To(ContainSubstring("incorrect scaletype parameter"))
		})

		Context("when the store query fails", func() {
			BeforeEach(func() {
				stateDB.QueryScalingHistoriesReturns(nil, errors.New("an error"))
			})

			It("responds with an internal error", func() {
				req := httptest.NewRequest(http.MethodGet, "/v1/apps/an-app-id/scaling_histories", nil)
				handler.GetScalingHistories(resp, req, vars)

				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Body.String()).To(ContainSubstring("Error getting scaling histories from database"))
			})
		})
	})

	Describe("GetScalingHistoriesCount", func() {
		BeforeEach(func() {
			stateDB.CountScalingHistoriesReturns(5, nil)
		})

		It("returns the count as json", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/apps/an-app-id/scaling_histories/count", nil)
			handler.GetScalingHistoriesCount(resp, req, vars)

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body.String()).To(MatchJSON(`{"count": 5}`))
		})

		Context("when counting fails", func() {
			BeforeEach(func() {
				stateDB.CountScalingHistoriesReturns(0, errors.New("an error"))
			})

			It("responds with an internal error", func() {
				req := httptest.NewRequest(http.MethodGet, "/v1/apps/an-app-id/scaling_histories/count", nil)
				handler.GetScalingHistoriesCount(resp, req, vars)

				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Body.String()).To(ContainSubstring("Error counting scaling histories in database"))
			})
		})
	})
})
