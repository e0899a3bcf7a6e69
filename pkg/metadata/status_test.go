package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetStatusIsValid(t *testing.T) {
	tests := []struct {
		name     string
		status   AssetStatus
		expected bool
	}{
		{"running status", AssetRunning, true},
		{"downtime status", AssetDowntime, true},
		{"maintenance status", AssetMaintenance, true},
		{"offline status", AssetOffline, true},
		{"unknown status", AssetStatus("Broken"), false},
		{"lowercase is not valid", AssetStatus("running"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.IsValid())
		})
	}
}

func TestNewWorkOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"requested", "Requested", false},
		{"pending", "Pending", false},
		{"in progress with space", "In Progress", false},
		{"on hold", "On Hold", false},
		{"completed", "Completed", false},
		{"lowercase rejected", "completed", true},
		{"unknown rejected", "Cancelled", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := NewWorkOrderStatus(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.value, status.String())
		})
	}
}

func TestNewWorkOrderPriority(t *testing.T) {
	for _, valid := range []string{"Low", "Medium", "High", "Critical"} {
		priority, err := NewWorkOrderPriority(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, priority.String())
	}

	_, err := NewWorkOrderPriority("Urgent")
	assert.Error(t, err)
}

func TestSeverityIsValid(t *testing.T) {
	assert.True(t, SeverityInfo.IsValid())
	assert.True(t, SeveritySuccess.IsValid())
	assert.True(t, SeverityWarning.IsValid())
	assert.True(t, SeverityError.IsValid())
	assert.False(t, Severity("fatal").IsValid())
}
