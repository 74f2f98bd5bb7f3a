package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanViewTicket(t *testing.T) {
	tests := []struct {
		name        string
		actor       Actor
		requesterID uint
		want        bool
	}{
		{
			name:        "admin sees any ticket",
			actor:       Actor{UserID: 1, Role: RoleAdmin},
			requesterID: 42,
			want:        true,
		},
		{
			name:        "agent sees any ticket",
			actor:       Actor{UserID: 2, Role: RoleAgent},
			requesterID: 42,
			want:        true,
		},
		{
			name:        "employee sees own ticket",
			actor:       Actor{UserID: 42, Role: RoleEmployee},
			requesterID: 42,
			want:        true,
		},
		{
			name:        "employee denied on another user's ticket",
			actor:       Actor{UserID: 7, Role: RoleEmployee},
			requesterID: 42,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := CanViewTicket(tt.actor, tt.requesterID)
			assert.Equal(t, tt.want, decision.Allowed)
			if !tt.want {
				assert.NotEmpty(t, decision.Reason)
			}
		})
	}
}

func TestTicketUpdateScopeFor(t *testing.T) {
	tests := []struct {
		name        string
		actor       Actor
		requesterID uint
		want        TicketUpdateScope
	}{
		{
			name:        "admin gets full scope",
			actor:       Actor{UserID: 1, Role: RoleAdmin},
			requesterID: 42,
			want:        TicketUpdateFull,
		},
		{
			name:        "agent gets full scope",
			actor:       Actor{UserID: 2, Role: RoleAgent},
			requesterID: 42,
			want:        TicketUpdateFull,
		},
		{
			name:        "owner employee gets description only",
			actor:       Actor{UserID: 42, Role: RoleEmployee},
			requesterID: 42,
			want:        TicketUpdateDescription,
		},
		{
			name:        "non-owner employee gets nothing",
			actor:       Actor{UserID: 7, Role: RoleEmployee},
			requesterID: 42,
			want:        TicketUpdateNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TicketUpdateScopeFor(tt.actor, tt.requesterID))
		})
	}
}

func TestCanViewLog(t *testing.T) {
	assert.True(t, CanViewLog(Actor{UserID: 2, Role: RoleAgent}, 9).Allowed)
	assert.True(t, CanViewLog(Actor{UserID: 9, Role: RoleEmployee}, 9).Allowed)
	assert.False(t, CanViewLog(Actor{UserID: 3, Role: RoleEmployee}, 9).Allowed)
}

func TestListScoping(t *testing.T) {
	assert.False(t, ScopesTicketListToOwner(Actor{UserID: 1, Role: RoleAdmin}))
	assert.False(t, ScopesLogListToOwner(Actor{UserID: 2, Role: RoleAgent}))
	assert.True(t, ScopesTicketListToOwner(Actor{UserID: 3, Role: RoleEmployee}))
	assert.True(t, ScopesLogListToOwner(Actor{UserID: 3, Role: RoleEmployee}))
}

func TestCanReportMetric(t *testing.T) {
	assert.True(t, CanReportMetric(Actor{UserID: 1, Role: RoleAdmin}).Allowed)
	assert.True(t, CanReportMetric(Actor{UserID: 2, Role: RoleAgent}).Allowed)
	assert.False(t, CanReportMetric(Actor{UserID: 3, Role: RoleEmployee}).Allowed)
}

func TestCanListUsers(t *testing.T) {
	assert.True(t, CanListUsers(Actor{UserID: 1, Role: RoleAdmin}).Allowed)
	assert.False(t, CanListUsers(Actor{UserID: 2, Role: RoleAgent}).Allowed)
	assert.False(t, CanListUsers(Actor{UserID: 3, Role: RoleEmployee}).Allowed)
}
