package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/lifecycle/domain"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.State
		action  access.Action
		want    domain.State
		wantErr bool
	}{
		{name: "delete active", from: domain.StateActive, action: access.ActionDelete, want: domain.StateRecycled},
		{name: "restore recycled", from: domain.StateRecycled, action: access.ActionRestore, want: domain.StateActive},
		{name: "delete recycled", from: domain.StateRecycled, action: access.ActionDelete, wantErr: true},
		{name: "restore active", from: domain.StateActive, action: access.ActionRestore, wantErr: true},
		{name: "view is not a transition", from: domain.StateActive, action: access.ActionView, wantErr: true},
		{name: "modify is not a transition", from: domain.StateRecycled, action: access.ActionModify, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.Next(tt.from, tt.action)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidTransition)
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, domain.StateActive, domain.StateOf(false))
	assert.Equal(t, domain.StateRecycled, domain.StateOf(true))
}
