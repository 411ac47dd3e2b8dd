package restdocs

import (
	"sync/atomic"

	"github.com/fjglira/go-restdocs/internal/domain"
)

// TestExecutionContext reports the test method that is currently executing.
// TestMethod returns nil when no method is available.
type TestExecutionContext interface {
	TestMethod() *domain.TestMethod
}

// Context holds the state of a single documentation run: the test execution
// context it was created for and a step counter. Only the counter is mutable.
type Context struct {
	stepCount   atomic.Int64
	testContext TestExecutionContext
}

// NewContext creates a Context backed by tc, which may be nil.
func NewContext(tc TestExecutionContext) *Context {
	return &Context{testContext: tc}
}

// TestMethod returns the test method that is currently executing, or nil if
// the context has no test execution context.
func (c *Context) TestMethod() *domain.TestMethod {
	if c.testContext == nil {
		return nil
	}
	return c.testContext.TestMethod()
}

// GetAndIncrementStepCount increments the step count and returns the value it
// had before. It is meant for the documentation run machinery (see Manager.NextStep).
func (c *Context) GetAndIncrementStepCount() int {
	return int(c.stepCount.Add(1) - 1)
}

// StepCount returns the current step count.
func (c *Context) StepCount() int {
	return int(c.stepCount.Load())
}
