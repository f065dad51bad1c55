// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"podscope/internal/models"
	"podscope/internal/services"
	"podscope/internal/web"
)

// --- MOCK COUNTER SERVICE ---
type MockCounterService struct {
	mock.Mock
}

var _ services.CounterService = (*MockCounterService)(nil)

func (m *MockCounterService) Increment() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockCounterService) Value() int {
	args := m.Called()
	return args.Int(0)
}

// --- MOCK READINESS SERVICE ---
type MockReadinessService struct {
	mock.Mock
}

var _ services.ReadinessService = (*MockReadinessService)(nil)

func (m *MockReadinessService) IsReady() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockReadinessService) ReadyAfterSec() int {
	args := m.Called()
	return args.Int(0)
}

// --- MOCK IDENTITY SERVICE ---
type MockIdentityService struct {
	mock.Mock
}

var _ services.IdentityService = (*MockIdentityService)(nil)

func (m *MockIdentityService) PodIdentity() models.PodIdentity {
	args := m.Called()
	return args.Get(0).(models.PodIdentity)
}

func (m *MockIdentityService) Snapshot() (models.Snapshot, error) {
	args := m.Called()
	return args.Get(0).(models.Snapshot), args.Error(1)
}

// --- TEST HELPERS ---

const testDashboardTemplate = `<h1>podscope</h1>
<h2>Runtime</h2><p>{{.Hostname}} visits={{.Count}} ready={{.Ready}}</p>
<h2>API</h2><p>{{.Env.POD_NAME}}</p>`

func testRenderer(t *testing.T) *web.Renderer {
	t.Helper()
	r, err := web.NewRenderer(fstest.MapFS{
		"templates/index.html": &fstest.MapFile{Data: []byte(testDashboardTemplate)},
	})
	assert.NoError(t, err)
	return r
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestHandlers(t *testing.T, counter *MockCounterService, gate *MockReadinessService, identity *MockIdentityService) *Handlers {
	t.Helper()
	return &Handlers{
		Counter:  counter,
		Gate:     gate,
		Identity: identity,
		Renderer: testRenderer(t),
		Log:      testLogger(),
		args:     []string{"podscope"},
	}
}
