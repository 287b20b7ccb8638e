package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseCode(t *testing.T) {
	assert.Equal(t, "CIS 2103", BaseCode("CIS 2103 - Group 1"))
	assert.Equal(t, "CIS 2103", BaseCode("CIS 2103 - Group 12"))
	assert.Equal(t, "GE-FEL 3", BaseCode("GE-FEL 3"))
	// Only the first separator splits.
	assert.Equal(t, "IS 3101N", BaseCode("IS 3101N - Group 1 - Lab"))
}

func TestBuildSectionIndex(t *testing.T) {
	// Arrange
	courses := []Course{
		{Code: "CIS 2103 - Group 1"},
		{Code: "IS 3101N - Group 1"},
		{Code: "CIS 2103 - Group 2"},
		{Code: "CIS 2103 - Group 3"},
		{Code: "IS 3101N - Group 2"},
	}

	// Act
	index := BuildSectionIndex(courses)

	// Assert
	assert.Equal(t, []string{"CIS 2103", "IS 3101N"}, index.Codes())

	sections, ok := index.Sections("CIS 2103")
	assert.True(t, ok)
	assert.Equal(t, []Course{
		{Code: "CIS 2103 - Group 1"},
		{Code: "CIS 2103 - Group 2"},
		{Code: "CIS 2103 - Group 3"},
	}, sections)

	_, ok = index.Sections("MATH 101")
	assert.False(t, ok)
}
