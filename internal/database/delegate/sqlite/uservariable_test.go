package sqlite_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetUserVariable(t *testing.T) {
	clearTestEnvironment()
	s := openTestDelegate(t)

	if err := s.SetUserVariable("username", sql.NullString{String: "auditor", Valid: true}); err != nil {
		t.Log(err)
		t.Fail()
	}
	if value, err := s.GetUserVariable("username"); err != nil {
		t.Log(err)
		t.Fail()
	} else {
		assert.True(t, value.Valid)
		assert.Equal(t, "auditor", value.String)
	}

	// Overwriting an existing variable must update it in place
	if err := s.SetUserVariable("username", sql.NullString{String: "reviewer", Valid: true}); err != nil {
		t.Log(err)
		t.Fail()
	}
	if value, err := s.GetUserVariable("username"); err != nil {
		t.Log(err)
		t.Fail()
	} else {
		assert.Equal(t, "reviewer", value.String)
	}

	s.Close()
	clearTestEnvironment()
}

func TestGetMissingUserVariable(t *testing.T) {
	clearTestEnvironment()
	s := openTestDelegate(t)

	value, err := s.GetUserVariable("unexistent")
	if err != nil {
		t.Log(err)
		t.Fail()
	}
	assert.False(t, value.Valid)

	s.Close()
	clearTestEnvironment()
}
