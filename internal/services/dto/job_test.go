package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateJobRequest_NormalizedSkills(t *testing.T) {
	req := CreateJobRequest{
		Skills:     []string{" React ", ""},
		SkillsText: "Node.js, , PostgreSQL ,",
	}

	assert.Equal(t, []string{"React", "Node.js", "PostgreSQL"}, req.NormalizedSkills())
}

func TestCreateJobRequest_NoSkills(t *testing.T) {
	req := CreateJobRequest{}
	skills := req.NormalizedSkills()
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}
