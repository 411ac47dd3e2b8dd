package restdocs

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fjglira/go-restdocs/internal/config"
	"github.com/fjglira/go-restdocs/internal/domain"
)

// Step is one documented step of a run.
type Step struct {
	Number    int // 1-based
	Directory string
	Method    *domain.TestMethod
}

// Manager drives documentation runs: one Context per documented test.
type Manager struct {
	mu      sync.RWMutex
	cfg     *config.Config
	log     *logrus.Logger
	current *Context
	runID   string
}

// NewManager creates a Manager using the output and dry-run settings of cfg.
func NewManager(cfg *config.Config, log *logrus.Logger) *Manager {
	return &Manager{cfg: cfg, log: log}
}

// BeforeTest starts a documentation run for the test described by tc.
func (m *Manager) BeforeTest(tc TestExecutionContext) (*Context, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return nil, domain.NewErrorWithSuggestion("run", methodName(m.current.TestMethod()), 0,
			"cannot start documentation run",
			"call AfterTest before starting the next run",
			domain.ErrRunActive)
	}

	m.current = NewContext(tc)
	m.runID = uuid.NewString()
	m.log.WithFields(logrus.Fields{
		"run":    m.runID,
		"method": methodName(m.current.TestMethod()),
	}).Info("Documentation run started")

	return m.current, nil
}

// AfterTest ends the current run. It is a no-op when no run is active.
func (m *Manager) AfterTest() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return
	}
	m.log.WithFields(logrus.Fields{
		"run":   m.runID,
		"steps": m.current.StepCount(),
	}).Info("Documentation run finished")

	m.current = nil
	m.runID = ""
}

// Current returns the Context of the active run.
func (m *Manager) Current() (*Context, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil, domain.NewError("run", "", 0, "no context", domain.ErrNoActiveRun)
	}
	return m.current, nil
}

// NextStep advances the step count of the active run and returns the output
// directory for the new step.
func (m *Manager) NextStep() (Step, error) {
	m.mu.RLock()
	ctx, runID := m.current, m.runID
	m.mu.RUnlock()

	if ctx == nil {
		return Step{}, domain.NewErrorWithSuggestion("run", "", 0,
			"cannot document step",
			"call BeforeTest first",
			domain.ErrNoActiveRun)
	}

	number := ctx.GetAndIncrementStepCount() + 1
	method := ctx.TestMethod()

	rel, err := resolve(m.cfg.Output.Pattern, method, number)
	if err != nil {
		return Step{}, err
	}
	step := Step{
		Number:    number,
		Directory: filepath.Join(m.cfg.Output.Directory, filepath.FromSlash(rel)),
		Method:    method,
	}

	entry := m.log.WithFields(logrus.Fields{
		"run":    runID,
		"method": methodName(method),
		"step":   number,
	})

	if m.cfg.Output.CreateDirectories {
		if m.cfg.DryRun {
			entry.Infof("[DRY-RUN] Would create: %s", step.Directory)
			return step, nil
		}
		if err := os.MkdirAll(step.Directory, 0755); err != nil {
			return Step{}, domain.NewErrorWithSuggestion("write", methodName(method), number,
				"failed to create output directory "+step.Directory,
				"check write permissions for output.directory",
				err)
		}
	}

	entry.Debugf("Documenting step in %s", step.Directory)
	return step, nil
}

func methodName(m *domain.TestMethod) string {
	if m == nil {
		return ""
	}
	return m.FullName()
}
