package cloud_test

import (
	"errors"
	"fmt"

	. "code.cloudfoundry.org/scalingengine/cloud"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	Describe("IsNotFound", func() {
		It("recognizes a classified not-found error", func() {
			err := NewError(ErrorCodeNotFound, "an-app-id", 404, "app not found")
			Expect(IsNotFound(err)).To(BeTrue())
		})

		It("recognizes a wrapped classified error", func() {
			err := fmt.Errorf("poll failed: %w", NewError(ErrorCodeNotFound, "an-app-id", 404, "app not found"))
			Expect(IsNotFound(err)).To(BeTrue())
		})

		It("recognizes a 404 status without the code", func() {
			err := NewError(ErrorCodeInternal, "an-app-id", 404, "gone")
			Expect(IsNotFound(err)).To(BeTrue())
		})

		It("falls back to matching a plain 404 message", func() {
			Expect(IsNotFound(errors.New("unexpected response: 404 Not Found"))).To(BeTrue())
		})

		It("rejects other errors", func() {
			Expect(IsNotFound(errors.New("connection refused"))).To(BeFalse())
			Expect(IsNotFound(NewError(ErrorCodeInternal, "an-app-id", 500, "boom"))).To(BeFalse())
			Expect(IsNotFound(nil)).To(BeFalse())
		})
	})

	Describe("IsQuotaExceeded", func() {
		It("recognizes a quota error", func() {
			err := NewError(ErrorCodeQuotaExceeded, "an-app-id", 403, "quota exceeded")
			Expect(IsQuotaExceeded(err)).To(BeTrue())
		})

		It("rejects other errors", func() {
			Expect(IsQuotaExceeded(errors.New("quota"))).To(BeFalse())
			Expect(IsQuotaExceeded(nil)).To(BeFalse())
		})
	})

	Describe("ClassifyErrorCode", func() {
		It("preserves the quota and not-found codes", func() {
			Expect(ClassifyErrorCode(NewError(ErrorCodeQuotaExceeded, "an-app-id", 403, ""))).To(Equal(ErrorCodeQuotaExceeded))
			Expect(ClassifyErrorCode(NewError(ErrorCodeNotFound, "an-app-id", 404, ""))).To(Equal(ErrorCodeNotFound))
		})

		It("collapses everything else into the internal code", func() {
			Expect(ClassifyErrorCode(errors.New("connection refused"))).To(Equal(ErrorCodeInternal))
			Expect(ClassifyErrorCode(NewError("SomethingNew", "an-app-id", 500, ""))).To(Equal(ErrorCodeInternal))
		})
	})
})
