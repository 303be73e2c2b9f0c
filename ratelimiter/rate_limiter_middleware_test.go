package ratelimiter_test

import (
	"net/http"
	"net/http/httptest"

	. "code.cloudfoundry.org/scalingengine/ratelimiter"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
)

type stubLimiter struct {
	exceeds bool
}

func (l *stubLimiter) ExceedsLimit(string) bool {
	return l.exceeds
}

var _ = Describe("RateLimiterMiddleware", func() {
	var (
		limiter  *stubLimiter
		resp     *httptest.ResponseRecorder
		router   *mux.Router
		hitCount int
	)

	BeforeEach(func() {
		limiter = &stubLimiter{}
		hitCount = 0

		mw := NewRateLimiterMiddleware("appid", limiter, lagertest.NewTestLogger("rate-limiter-middleware"))
		router = mux.NewRouter()
		router.Handle("/v1/apps/{appid}/event", mw.CheckRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hitCount++
			w.WriteHeader(http.StatusAccepted)
		})))
		router.Handle("/v1/event", mw.CheckRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hitCount++
		})))

		resp = httptest.NewRecorder()
	})

	It("passes the request through when under the limit", func() {
		req := httptest.NewRequest(http.MethodPost, "/v1/apps/an-app-id/event", nil)
		router.ServeHTTP(resp, req)

		Expect(resp.Code).To(Equal(http.StatusAccepted))
		Expect(hitCount).To(Equal(1))
	})

	It("rejects the request when the key exceeds its limit", func() {
		limiter.exceeds = true
		req := httptest.NewRequest(http.MethodPost, "/v1/apps/an-app-id/event", nil)
		router.ServeHTTP(resp, req)

		Expect(resp.Code).To(Equal(http.StatusTooManyRequests))
		Expect(resp.Body.String()).To(ContainSubstring("Request-Limit-Exceeded"))
		Expect(hitCount).To(BeZero())
	})

	It("rejects a request with no rate limit key", func() {
		req := httptest.NewRequest(http.MethodPost, "/v1/event", nil)
		router.ServeHTTP(resp, req)

		Expect(resp.Code).To(Equal(http.StatusBadRequest))
		Expect(resp.Body.String()).To(ContainSubstring("Missing rate limit key"))
		Expect(hitCount).To(BeZero())
	})
})
