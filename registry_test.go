package toolgate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_UpsertGet(t *testing.T) {
	reg := NewRegistry()
	call := &ToolCall{ID: "call_1", Name: "create_recipe", Status: StatusPendingConfirmation}
	reg.Upsert(call)

	got, ok := reg.Get("call_1")
	require.True(t, ok)
	require.Same(t, call, got)

	_, ok = reg.Get("missing")
	require.False(t, ok)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_LastWriteWins(t *testing.T) {
	reg := NewRegistry()
	first := &ToolCall{ID: "call_1", Name: "create_recipe", Status: StatusApproved}
	second := &ToolCall{ID: "call_1", Name: "edit_recipe", Status: StatusPendingConfirmation}
	reg.Upsert(first)
	reg.Upsert(second)

	got, ok := reg.Get("call_1")
	require.True(t, ok)
	require.Same(t, second, got)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_Pending(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert(&ToolCall{ID: "1", Name: "a", Status: StatusPendingConfirmation})
	reg.Upsert(&ToolCall{ID: "2", Name: "b", Status: StatusApproved})
	reg.Upsert(&ToolCall{ID: "3", Name: "c", Status: StatusPendingConfirmation})
	reg.Upsert(&ToolCall{ID: "4", Name: "d", Status: StatusExecuted})

	pending := reg.Pending()
	require.Len(t, pending, 2)
	ids := []string{pending[0].ID, pending[1].ID}
	assert.ElementsMatch(t, []string{"1", "3"}, ids)
}

func TestRegistry_Clear(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert(&ToolCall{ID: "1", Name: "a", Status: StatusPendingConfirmation})
	reg.Upsert(&ToolCall{ID: "2", Name: "b", Status: StatusApproved})
	reg.Clear()

	assert.Equal(t, 0, reg.Len())
	_, ok := reg.Get("1")
	assert.False(t, ok)
	assert.Empty(t, reg.Pending())
}

func TestRegistry_SetStatus(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert(&ToolCall{ID: "1", Name: "a", Status: StatusPendingConfirmation})

	require.NoError(t, reg.setStatus("1", StatusApproved))
	got, _ := reg.Get("1")
	assert.Equal(t, StatusApproved, got.Status)

	err := reg.setStatus("missing", StatusApproved)
	require.ErrorIs(t, err, ErrCallNotFound)
}
