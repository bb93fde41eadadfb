package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCaseStatus(t *testing.T) {
	for _, valid := range ValidCaseStatuses {
		status, err := ValidateCaseStatus(string(valid))
		assert.NoError(t, err)
		assert.Equal(t, valid, status)
	}

	status, err := ValidateCaseStatus("instantiated")
	assert.ErrorIs(t, err, ErrInvalidCaseStatus)
	assert.Equal(t, CaseUnknownStatus, status)
}

func TestCanComplete(t *testing.T) {
	assert.True(t, CaseAccepted.CanComplete())
	assert.True(t, CaseWip.CanComplete())
	assert.False(t, CasePending.CanComplete())
	assert.False(t, CaseCompleted.CanComplete())
	assert.False(t, CaseClosed.CanComplete())
}

func TestIsAssignedTo(t *testing.T) {
	providerId := "13617a88-56f5-4baa-8d11-ce102f7da907"

	assert.False(t, Case{}.IsAssignedTo(providerId))
	assert.True(t, Case{ProviderId: &providerId}.IsAssignedTo(providerId))
	assert.False(t, Case{ProviderId: &providerId}.IsAssignedTo("someone-else"))
}

func TestEligibleCategories(t *testing.T) {
	categories := EligibleCategories("cat_plumber")
	assert.Contains(t, categories, "cat_plumber")
	assert.Contains(t, categories, "cat_handyman")
	assert.Contains(t, categories, "cat_heating")

	// Unknown categories still match themselves.
	assert.Equal(t, []string{"cat_chimney"}, EligibleCategories("cat_chimney"))
}

func TestIsRelatedCategory(t *testing.T) {
	assert.True(t, IsRelatedCategory("cat_plumber", "cat_handyman"))
	assert.False(t, IsRelatedCategory("cat_plumber", "cat_cleaner"))
	// The relation is directional: painters accept handyman work, cleaners
	// accept nothing.
	assert.False(t, IsRelatedCategory("cat_cleaner", "cat_handyman"))
}
