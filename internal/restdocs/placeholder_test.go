package restdocs_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/go-restdocs/internal/domain"
	"github.com/fjglira/go-restdocs/internal/restdocs"
)

var _ = Describe("ResolvePattern", func() {
	contextFor := func(m *domain.TestMethod) *restdocs.Context {
		return restdocs.NewContext(restdocs.StaticTestContext{Method: m})
	}

	DescribeTable("method placeholders",
		func(method domain.TestMethod, pattern, expected string) {
			out, err := restdocs.ResolvePattern(pattern, contextFor(&method))
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal(expected))
		},
		Entry("kebab-case", domain.TestMethod{Name: "TestGetUser"}, "{method-name}", "test-get-user"),
		Entry("snake_case", domain.TestMethod{Name: "TestGetUser"}, "{method_name}", "test_get_user"),
		Entry("CamelCase", domain.TestMethod{Name: "TestGetUser"}, "{MethodName}", "TestGetUser"),
		Entry("lower camel input", domain.TestMethod{Name: "getUser"}, "{MethodName}", "GetUser"),
		Entry("acronym", domain.TestMethod{Name: "TestGetHTTPUser"}, "{method-name}", "test-get-http-user"),
		Entry("digits", domain.TestMethod{Name: "getUser2Items"}, "{method_name}", "get_user2_items"),
		Entry("subtest", domain.TestMethod{Suite: "TestUsers", Name: "by_id"}, "{method-name}", "test-users-by-id"),
		Entry("ginkgo spec", domain.TestMethod{Suite: "Users API", Name: "returns a user"}, "{MethodName}", "UsersAPIReturnsAUser"),
		Entry("ginkgo spec kebab", domain.TestMethod{Suite: "Users API", Name: "returns a user"}, "{method-name}", "users-api-returns-a-user"),
		Entry("mixed with text", domain.TestMethod{Name: "TestGetUser"}, "api/{method-name}/docs", "api/test-get-user/docs"),
	)

	It("should resolve the current step count", func() {
		ctx := contextFor(&domain.TestMethod{Name: "TestGetUser"})
		ctx.GetAndIncrementStepCount()
		ctx.GetAndIncrementStepCount()

		out, err := restdocs.ResolvePattern("{method-name}/{step}", ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("test-get-user/2"))
	})

	It("should resolve {step} without a test method", func() {
		out, err := restdocs.ResolvePattern("step-{step}", restdocs.NewContext(nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("step-0"))
	})

	It("should keep unknown placeholders", func() {
		out, err := restdocs.ResolvePattern("{class-name}/{step}", restdocs.NewContext(nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("{class-name}/0"))
	})

	It("should fail for method placeholders without a test method", func() {
		_, err := restdocs.ResolvePattern("{method-name}", restdocs.NewContext(nil))
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, domain.ErrNoTestMethod)).To(BeTrue())

		var rdErr *domain.RestDocsError
		Expect(errors.As(err, &rdErr)).To(BeTrue())
		Expect(rdErr.Phase).To(Equal("resolve"))
	})
})
