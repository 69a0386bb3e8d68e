package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockRequest_WireIgnoresServerOwnedFields(t *testing.T) {
	t.Parallel()

	// Identity and timestamp are server-owned; a body carrying them in any
	// casing must not populate the request.
	body := `{
		"type": "IN",
		"timestamp": "2020-01-01T09:00:00Z",
		"Timestamp": "2020-01-01T09:00:00Z",
		"employee_id": "emp-attacker",
		"EmployeeID": "emp-attacker"
	}`

	var req ClockRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "IN", req.Type)
	assert.True(t, req.Timestamp.IsZero())
	assert.Empty(t, req.EmployeeID)
}
