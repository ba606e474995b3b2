//go:build unit

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestIncBookingOperation(t *testing.T) {
	before := testutil.ToFloat64(bookingOperations.WithLabelValues("create", OutcomeConflict))

	IncBookingOperation("create", OutcomeConflict)
	IncBookingOperation("create", OutcomeConflict)

	after := testutil.ToFloat64(bookingOperations.WithLabelValues("create", OutcomeConflict))
	assert.Equal(t, before+2, after)
}

func TestObserveAvailabilityCheck(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		err       error
		label     string
	}{
		{name: "free slot", available: true, label: "available"},
		{name: "taken slot", available: false, label: "unavailable"},
		{name: "lookup failure", available: false, err: assert.AnError, label: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := availabilityChecks.WithLabelValues(tt.label)
			before := testutil.ToFloat64(counter)

			ObserveAvailabilityCheck(tt.available, tt.err)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestObserveHTTPRequest(t *testing.T) {
	counter := httpRequests.WithLabelValues("GET", "/api/rooms", "200")
	before := testutil.ToFloat64(counter)

	ObserveHTTPRequest("GET", "/api/rooms", 200, 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
