// internal/api/handlers/home_handler_test.go
package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"podscope/internal/models"
)

func homeMocks(count int, ready bool) (*MockCounterService, *MockReadinessService, *MockIdentityService) {
	counter := new(MockCounterService)
	counter.On("Increment").Return(count)

	gate := new(MockReadinessService)
	gate.On("ReadyAfterSec").Return(5)

	identity := new(MockIdentityService)
	identity.On("Snapshot").Return(models.Snapshot{
		Pod:      "demo-pod-1",
		Node:     "node-a",
		Hostname: "demo-host",
		Count:    count,
		Ready:    ready,
	}, nil)
	identity.On("PodIdentity").Return(models.PodIdentity{
		Pod:         "demo-pod-1",
		Node:        "node-a",
		AppEnv:      "dev",
		ServiceName: "podscope",
	})
	return counter, gate, identity
}

func TestHome(t *testing.T) {
	counter, gate, identity := homeMocks(3, true)
	h := newTestHandlers(t, counter, gate, identity)

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	h.Home(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Runtime")
	assert.Contains(t, rr.Body.String(), "API")
	assert.Contains(t, rr.Body.String(), "visits=3")
	assert.Contains(t, rr.Body.String(), "demo-pod-1")
	counter.AssertExpectations(t)
	identity.AssertExpectations(t)
}

func TestHome_IncrementsOncePerRequest(t *testing.T) {
	counter, gate, identity := homeMocks(1, true)
	h := newTestHandlers(t, counter, gate, identity)

	rr := httptest.NewRecorder()
	h.Home(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	counter.AssertNumberOfCalls(t, "Increment", 1)
	counter.AssertNotCalled(t, "Value")
}

func TestHome_SnapshotFailure(t *testing.T) {
	counter := new(MockCounterService)
	counter.On("Increment").Return(1)

	identity := new(MockIdentityService)
	identity.On("Snapshot").Return(models.Snapshot{}, errors.New("hostname lookup failed"))

	h := newTestHandlers(t, counter, new(MockReadinessService), identity)

	rr := httptest.NewRecorder()
	h.Home(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}
