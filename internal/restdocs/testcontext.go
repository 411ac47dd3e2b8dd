package restdocs

import (
	"strings"

	"github.com/onsi/ginkgo/v2"

	"github.com/fjglira/go-restdocs/internal/domain"
)

// StaticTestContext always reports the same test method. A nil Method
// behaves like a missing test execution context.
type StaticTestContext struct {
	Method *domain.TestMethod
}

// TestMethod implements TestExecutionContext.
func (s StaticTestContext) TestMethod() *domain.TestMethod {
	return s.Method
}

// Namer is satisfied by *testing.T and *testing.B.
type Namer interface {
	Name() string
}

// TestingContext adapts a Go test to TestExecutionContext.
type TestingContext struct {
	t Namer
}

// NewTestingContext wraps t. The name is read on every call so subtests
// sharing a parent see their own name.
func NewTestingContext(t Namer) *TestingContext {
	return &TestingContext{t: t}
}

// TestMethod splits "TestUsers/get_by_id" into Suite "TestUsers" and Name "get_by_id".
func (c *TestingContext) TestMethod() *domain.TestMethod {
	if c == nil || c.t == nil {
		return nil
	}
	name := c.t.Name()
	if name == "" {
		return nil
	}
	idx := strings.LastIndex(name, "/")
	if idx < 0 {
		return &domain.TestMethod{Name: name}
	}
	return &domain.TestMethod{Suite: name[:idx], Name: name[idx+1:]}
}

// GinkgoTestContext reports the Ginkgo spec that is currently running.
type GinkgoTestContext struct{}

// TestMethod returns nil outside of a running spec.
func (GinkgoTestContext) TestMethod() *domain.TestMethod {
	report := ginkgo.CurrentSpecReport()
	if report.LeafNodeText == "" {
		return nil
	}
	return &domain.TestMethod{
		Name:     report.LeafNodeText,
		Suite:    strings.Join(report.ContainerHierarchyTexts, " "),
		Location: report.LeafNodeLocation.String(),
	}
}
