package cloud_test

import (
	"net/http"

	. "code.cloudfoundry.org/scalingengine/cloud"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"code.cloudfoundry.org/lager/v3/lagertest"
)

var _ = Describe("APIClient", func() {
	const testAppId = "an-app-id"

	var (
		apiServer *ghttp.Server
		client    *APIClient
	)

	BeforeEach(func() {
		apiServer = ghttp.NewServer()

		var err error
		client, err = NewAPIClient(lagertest.NewTestLogger("api-client"), ClientConfig{
			APIUrl:    apiServer.URL(),
			AuthToken: "a-token",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		apiServer.Close()
	})

	Describe("GetInstanceCount", func() {
		It("reads the desired instance count", func() {
			apiServer.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/v1/apps/an-app-id"),
				ghttp.VerifyHeaderKV("Authorization", "bearer a-token"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]int{"instances": 4, "running_instances": 3}),
			))

			instances, err := client.GetInstanceCount(testAppId)
			Expect(err).NotTo(HaveOccurred())
			Expect(instances).To(Equal(4))
		})

		It("classifies a 404 as not found", func() {
			apiServer.AppendHandlers(ghttp.RespondWith(http.StatusNotFound, `{"code":"NotFound","message":"app not found"}`))

			_, err := client.GetInstanceCount(testAppId)
			Expect(err).To(HaveOccurred())
			Expect(IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("GetRunningInstanceCount", func() {
		It("reads the running instance count", func() {
			apiServer.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/v1/apps/an-app-id"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]int{"instances": 4, "running_instances": 3}),
			))

			running, err := client.GetRunningInstanceCount(testAppId)
			Expect(err).NotTo(HaveOccurred())
			Expect(running).To(Equal(3))
		})
	})

	Describe("SetInstanceCount", func() {
		It("puts the new instance count", func() {
			apiServer.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPut, "/v1/apps/an-app-id"),
				ghttp.VerifyHeaderKV("Authorization", "bearer a-token"),
				ghttp.VerifyJSON(`{"instances": 6, "running_instances": 0}`),
				ghttp.RespondWith(http.StatusOK, ""),
			))

			Expect(client.SetInstanceCount(testAppId, 6)).To(Succeed())
		})

		It("accepts a 201 response", func() {
			apiServer.AppendHandlers(ghttp.RespondWith(http.StatusCreated, ""))
			Expect(client.SetInstanceCount(testAppId, 6)).To(Succeed())
		})

		It("classifies a quota rejection", func() {
			apiServer.AppendHandlers(ghttp.RespondWith(http.StatusForbidden, `{"code":"CF-AppMemoryQuotaExceeded","message":"quota exceeded"}`))

			err := client.SetInstanceCount(testAppId, 6)
			Expect(err).To(HaveOccurred())
			Expect(IsQuotaExceeded(err)).To(BeTrue())
		})

		It("classifies any other failure as internal", func() {
			apiServer.AppendHandlers(ghttp.RespondWith(http.StatusInternalServerError, "boom"))

			err := client.SetInstanceCount(testAppId, 6)
			Expect(err).To(HaveOccurred())
			Expect(ClassifyErrorCode(err)).To(Equal(ErrorCodeInternal))
		})
	})
})
