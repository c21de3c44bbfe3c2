package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/recipewise/toolgate"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSpyHandler(t *testing.T) {
	spy := &SpyHandler{Result: map[string]any{"done": true}}
	h := spy.Handler()
	assert.Equal(t, 0, spy.CallCount())
	res, err := h(context.Background(), map[string]any{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"done": true}, res)
	assert.Equal(t, 1, spy.CallCount())
	assert.Equal(t, map[string]any{"x": 1}, spy.LastArgs())
}

func TestNewTestExecutor(t *testing.T) {
	exec := NewTestExecutor("create_recipe")
	require.NotNil(t, exec)

	calls, err := exec.Parse([]toolgate.RawToolCall{
		Raw("call_1", "create_recipe", `{"title": "Soup"}`),
		Raw("call_2", "find_recipes", `{"query": "soup"}`),
	})
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, toolgate.StatusPendingConfirmation, calls[0].Status)
	assert.Equal(t, toolgate.StatusApproved, calls[1].Status)
	assert.Len(t, exec.Pending(), 1)
}
