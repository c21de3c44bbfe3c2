package toolgate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy classifies tool names into confirmation-required and read-only
// (auto-approved) sets. The sets only choose the initial status a call gets
// at parse time; they never change execute-time gating.
//
// A name absent from both sets is auto-approved: an unknown tool should not
// silently block a conversation at parse time. Execute still fails loudly for
// it when no handler is registered, so nothing unknown ever runs.
type Policy struct {
	confirm  map[string]bool
	readOnly map[string]bool
}

// NewPolicy creates an empty Policy (every tool auto-approved).
func NewPolicy() *Policy {
	return &Policy{
		confirm:  make(map[string]bool),
		readOnly: make(map[string]bool),
	}
}

// RequireConfirmation adds tool names to the confirmation-required set.
func (p *Policy) RequireConfirmation(names ...string) *Policy {
	for _, n := range names {
		p.confirm[n] = true
	}
	return p
}

// MarkReadOnly adds tool names to the read-only (auto-approved) set.
func (p *Policy) MarkReadOnly(names ...string) *Policy {
	for _, n := range names {
		p.readOnly[n] = true
	}
	return p
}

// RequiresConfirmation reports whether name is in the confirmation-required set.
func (p *Policy) RequiresConfirmation(name string) bool {
	return p.confirm[name]
}

// IsReadOnly reports whether name is in the read-only set.
func (p *Policy) IsReadOnly(name string) bool {
	return p.readOnly[name]
}

// InitialStatus returns the status a freshly parsed call gets:
// StatusPendingConfirmation for confirmation-required names, StatusApproved
// for read-only and unknown names.
func (p *Policy) InitialStatus(name string) Status {
	if p.confirm[name] {
		return StatusPendingConfirmation
	}
	return StatusApproved
}

// policyFile is the YAML shape consumed by ParsePolicy.
type policyFile struct {
	ConfirmationRequired []string `yaml:"confirmation_required"`
	ReadOnly             []string `yaml:"read_only"`
}

// ParsePolicy builds a Policy from YAML of the shape:
//
//	confirmation_required: [create_recipe, edit_recipe]
//	read_only: [find_recipes]
//
// A name listed in both sets is a configuration error: the sets must stay
// disjoint for the policy to be meaningful.
func ParsePolicy(data []byte) (*Policy, error) {
	var pf policyFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}
	p := NewPolicy()
	p.RequireConfirmation(pf.ConfirmationRequired...)
	p.MarkReadOnly(pf.ReadOnly...)
	for name := range p.confirm {
		if p.readOnly[name] {
			return nil, fmt.Errorf("parse policy: tool %q is both confirmation_required and read_only", name)
		}
	}
	return p, nil
}

// LoadPolicyFile reads and parses a YAML policy file.
func LoadPolicyFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}
	return ParsePolicy(data)
}
