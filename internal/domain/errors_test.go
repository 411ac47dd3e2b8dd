package domain_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/go-restdocs/internal/domain"
)

var _ = Describe("RestDocsError", func() {
	It("should format phase, method, step and cause", func() {
		err := domain.NewError("resolve", "TestGetUser", 3, "cannot resolve", errors.New("boom"))
		Expect(err.Error()).To(Equal("[resolve] TestGetUser#3: cannot resolve: boom"))
	})

	It("should omit empty fields", func() {
		err := domain.NewError("config", "", 0, "validation failed", nil)
		Expect(err.Error()).To(Equal("[config]: validation failed"))
	})

	It("should append the suggestion", func() {
		err := domain.NewErrorWithSuggestion("run", "", 0, "cannot document step", "call BeforeTest first", nil)
		Expect(err.Error()).To(HaveSuffix("(hint: call BeforeTest first)"))
	})

	It("should unwrap to its cause", func() {
		err := domain.NewError("run", "", 0, "no context", domain.ErrNoActiveRun)
		Expect(errors.Is(err, domain.ErrNoActiveRun)).To(BeTrue())
		Expect(errors.Is(err, domain.ErrRunActive)).To(BeFalse())
	})
})

var _ = Describe("TestMethod", func() {
	It("should join suite and name", func() {
		m := domain.TestMethod{Suite: "TestUsers", Name: "get"}
		Expect(m.FullName()).To(Equal("TestUsers/get"))
	})

	It("should return the bare name without a suite", func() {
		Expect(domain.TestMethod{Name: "TestGetUser"}.FullName()).To(Equal("TestGetUser"))
	})
})
