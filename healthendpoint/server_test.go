package healthendpoint_test

import (
	"net/http"
	"net/http/httptest"

	. "code.cloudfoundry.org/scalingengine/healthendpoint"
	"code.cloudfoundry.org/scalingengine/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	"code.cloudfoundry.org/lager/v3/lagertest"
)

var _ = Describe("NewHealthRouter", func() {
	var (
		conf     models.HealthConfig
		router   http.Handler
		err      error
		registry *prometheus.Registry
	)

	BeforeEach(func() {
		conf = models.HealthConfig{Port: 8081}
		registry = prometheus.NewRegistry()
	})

	JustBeforeEach(func() {
		router, err = NewHealthRouter(lagertest.NewTestLogger("health-router"), conf, registry)
	})

	Context("without credentials", func() {
		It("serves the metrics openly", func() {
			Expect(err).NotTo(HaveOccurred())

			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(resp.Code).To(Equal(http.StatusOK))
		})
	})

	Context("with credentials", func() {
		BeforeEach(func() {
			conf.HealthCheckUsername = "a-username"
			conf.HealthCheckPassword = "a-password"
		})

		It("rejects a request without basic auth", func() {
			Expect(err).NotTo(HaveOccurred())

			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(resp.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects wrong credentials", func() {
			resp := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.SetBasicAuth("a-username", "not-the-password")
			router.ServeHTTP(resp, req)
			Expect(resp.Code).To(Equal(http.StatusUnauthorized))
		})

		It("serves the metrics with the right credentials", func() {
			resp := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.SetBasicAuth("a-username", "a-password")
			router.ServeHTTP(resp, req)
			Expect(resp.Code).To(Equal(http.StatusOK))
		})
	})
})
