package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSyncEntityType(t *testing.T) {
	for _, value := range []string{"accounts", "campaigns", "ad_sets", "ads", "performance"} {
		entity, err := ParseSyncEntityType(value)
		assert.NoError(t, err)
		assert.Equal(t, SyncEntityType(value), entity)
	}

	_, err := ParseSyncEntityType("pixels")
	assert.Error(t, err)

	_, err = ParseSyncEntityType("")
	assert.Error(t, err)
}

func TestPerformanceRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  PerformanceRecord
		wantErr bool
	}{
		{
			name:   "registro completo",
			record: PerformanceRecord{"date_start": "2026-01-05", "account_id": "act_123", "spend": 1.0},
		},
		{
			name:    "sem date_start",
			record:  PerformanceRecord{"account_id": "act_123"},
			wantErr: true,
		},
		{
			name:    "date_start nulo",
			record:  PerformanceRecord{"date_start": nil, "account_id": "act_123"},
			wantErr: true,
		},
		{
			name:    "account_id vazio",
			record:  PerformanceRecord{"date_start": "2026-01-05", "account_id": ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsConflictColumn(t *testing.T) {
	assert.True(t, IsConflictColumn("date_start"))
	assert.True(t, IsConflictColumn("age_range"))
	assert.True(t, IsConflictColumn("region"))
	assert.False(t, IsConflictColumn("impressions"))
	assert.False(t, IsConflictColumn("last_fetched_time"))
}
