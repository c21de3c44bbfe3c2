package toolgate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRawToolCall_WireShape(t *testing.T) {
	// The descriptor unmarshals from the LLM function-calling wire format.
	var rc RawToolCall
	err := json.Unmarshal([]byte(`{
		"id": "call_1",
		"function": {"name": "create_recipe", "arguments": "{\"title\": \"Soup\"}"}
	}`), &rc)
	require.NoError(t, err)
	assert.Equal(t, "call_1", rc.ID)
	assert.Equal(t, "create_recipe", rc.Function.Name)
	assert.JSONEq(t, `{"title": "Soup"}`, rc.Function.Arguments)
}

func TestToolCall_View(t *testing.T) {
	call := &ToolCall{
		ID:        "call_1",
		Name:      "create_recipe",
		Arguments: map[string]any{"title": "Soup"},
		Status:    StatusPendingConfirmation,
	}
	view := call.View()
	assert.Equal(t, "call_1", view.ID)
	assert.Equal(t, "create_recipe", view.Name)
	assert.Equal(t, "pending_confirmation", view.Status)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "call_1",
		"name": "create_recipe",
		"arguments": {"title": "Soup"},
		"status": "pending_confirmation"
	}`, string(data))
}

func TestStatus_Values(t *testing.T) {
	assert.Equal(t, Status("pending_confirmation"), StatusPendingConfirmation)
	assert.Equal(t, Status("approved"), StatusApproved)
	assert.Equal(t, Status("rejected"), StatusRejected)
	assert.Equal(t, Status("executed"), StatusExecuted)
	assert.Equal(t, Status("failed"), StatusFailed)
}
