package toolgate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_InitialStatus(t *testing.T) {
	policy := NewPolicy().
		RequireConfirmation("create_recipe", "edit_recipe").
		MarkReadOnly("find_recipes")

	tests := []struct {
		name string
		tool string
		want Status
	}{
		{"confirmation required", "create_recipe", StatusPendingConfirmation},
		{"confirmation required 2", "edit_recipe", StatusPendingConfirmation},
		{"read only auto-approved", "find_recipes", StatusApproved},
		{"unknown fail-open", "frobnicate", StatusApproved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.InitialStatus(tt.tool))
		})
	}
}

func TestPolicy_Membership(t *testing.T) {
	policy := NewPolicy().RequireConfirmation("create_recipe").MarkReadOnly("find_recipes")
	assert.True(t, policy.RequiresConfirmation("create_recipe"))
	assert.False(t, policy.RequiresConfirmation("find_recipes"))
	assert.True(t, policy.IsReadOnly("find_recipes"))
	assert.False(t, policy.IsReadOnly("frobnicate"))
}

func TestPolicy_ExtensibleByName(t *testing.T) {
	policy := NewPolicy()
	assert.Equal(t, StatusApproved, policy.InitialStatus("delete_recipe"))
	policy.RequireConfirmation("delete_recipe")
	assert.Equal(t, StatusPendingConfirmation, policy.InitialStatus("delete_recipe"))
}

func TestParsePolicy(t *testing.T) {
	policy, err := ParsePolicy([]byte(`
confirmation_required: [create_recipe, edit_recipe]
read_only: [find_recipes]
`))
	require.NoError(t, err)
	assert.Equal(t, StatusPendingConfirmation, policy.InitialStatus("create_recipe"))
	assert.Equal(t, StatusApproved, policy.InitialStatus("find_recipes"))
	assert.True(t, policy.IsReadOnly("find_recipes"))
}

func TestParsePolicy_Overlap(t *testing.T) {
	_, err := ParsePolicy([]byte(`
confirmation_required: [create_recipe]
read_only: [create_recipe]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create_recipe")
}

func TestParsePolicy_BadYAML(t *testing.T) {
	_, err := ParsePolicy([]byte(`confirmation_required: {not a list`))
	require.Error(t, err)
}

func TestLoadPolicyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	content := `
confirmation_required:
  - create_recipe
read_only:
  - find_recipes
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	policy, err := LoadPolicyFile(path)
	require.NoError(t, err)
	assert.True(t, policy.RequiresConfirmation("create_recipe"))

	_, err = LoadPolicyFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
