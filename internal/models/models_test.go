package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJob_Skills(t *testing.T) {
	var job Job
	assert.Nil(t, job.GetSkills())

	job.SetSkills([]string{"React", "Node.js"})
	assert.Equal(t, []string{"React", "Node.js"}, job.GetSkills())

	job.SetSkills(nil)
	assert.JSONEq(t, `[]`, string(job.SkillsRequired))
}

func TestJob_IsExpired(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := created.AddDate(0, 0, 10)

	tests := []struct {
		name   string
		job    Job
		expect bool
	}{
		{"deadline passed", Job{DeadlineDays: 7, Status: JobStatusPending}, true},
		{"deadline passed while assigned", Job{DeadlineDays: 7, Status: JobStatusAssigned}, true},
		{"deadline ahead", Job{DeadlineDays: 14, Status: JobStatusPending}, false},
		{"no deadline", Job{DeadlineDays: 0, Status: JobStatusPending}, false},
		{"already accepted", Job{DeadlineDays: 7, Status: JobStatusAccepted}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := tt.job
			job.CreatedAt = created
			assert.Equal(t, tt.expect, job.IsExpired(now))
		})
	}
}

func TestWorker_RatingsAndName(t *testing.T) {
	w := Worker{Reviews: []Review{{Rating: 4}, {Rating: 5}}}
	assert.Equal(t, []int{4, 5}, w.Ratings())
	assert.Equal(t, "", w.FullName())

	w.Profile = &Profile{FullName: "Ann Lee"}
	assert.Equal(t, "Ann Lee", w.FullName())

	empty := Worker{}
	assert.NotNil(t, empty.Ratings())
	assert.Empty(t, empty.Ratings())
}

func TestStatuses(t *testing.T) {
	assert.True(t, JobStatusPending.IsOpen())
	assert.True(t, JobStatusAssigned.IsOpen())
	assert.False(t, JobStatusClosed.IsOpen())

	assert.True(t, ApplicationStatusAccepted.IsDecision())
	assert.True(t, ApplicationStatusDeclined.IsDecision())
	assert.False(t, ApplicationStatusPending.IsDecision())
}
