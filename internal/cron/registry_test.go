package cron

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJob struct {
	name string
}

func (s *stubJob) Name() string              { return s.name }
func (s *stubJob) Run(context.Context) error { return nil }

func TestRegistry_KeepsRunOrder(t *testing.T) {
	snapshot := &stubJob{name: "account-snapshot"}
	cleanup := &stubJob{name: "cleanup"}
	registry := NewRegistry(nil, snapshot)
	registry.Register(nil)
	registry.Register(cleanup)

	jobs := registry.Jobs()
	require.Len(t, jobs, 2)
	assert.Same(t, snapshot, jobs[0])
	assert.Same(t, cleanup, jobs[1])

	jobs[0] = nil
	assert.NotNil(t, registry.Jobs()[0], "Jobs hands out a copy")
}

func TestRegistry_SameNameReplaces(t *testing.T) {
	first := &stubJob{name: "account-snapshot"}
	second := &stubJob{name: "account-snapshot"}
	other := &stubJob{name: "cleanup"}

	registry := NewRegistry(first, other, second)

	jobs := registry.Jobs()
	require.Len(t, jobs, 2)
	assert.Same(t, second, jobs[0])
	assert.Same(t, other, jobs[1])
}

func TestRegistry_ZeroValueIsUsable(t *testing.T) {
	var registry Registry
	registry.Register(&stubJob{name: "a"})
	registry.Register(&stubJob{name: "a"})
	assert.Len(t, registry.Jobs(), 1)
}
