package validator

import (
	"testing"

	"jobmatch_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_JSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&dto.AssignWorkerRequest{})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "This field is required", vErr.Errors["worker_id"])

	assert.NoError(t, v.Validate(&dto.AssignWorkerRequest{WorkerID: "w-1"}))
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   interface{}
		field   string
		wantErr bool
	}{
		{"decision accepted", &dto.UpdateApplicationStatusRequest{Status: "accepted"}, "status", false},
		{"decision declined", &dto.UpdateApplicationStatusRequest{Status: "declined"}, "status", false},
		{"decision pending", &dto.UpdateApplicationStatusRequest{Status: "pending"}, "status", true},
		{"job status filter", &dto.JobListQuery{Status: "closed"}, "status", false},
		{"empty job status filter", &dto.JobListQuery{}, "status", false},
		{"unknown job status", &dto.JobListQuery{Status: "archived"}, "status", true},
		{"rating too high", &dto.CreateReviewRequest{WorkerID: "w", JobID: "j", Rating: 6}, "rating", true},
		{"negative experience", &dto.RegisterWorkerRequest{FullName: "Ann", Experience: -1}, "experience", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Errors, tt.field)
		})
	}
}
