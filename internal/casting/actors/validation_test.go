package actors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castwire/castwire/internal/casting/shared"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func idsPtr(ids []int64) *[]int64 { return &ids }

func TestValidateInputAgeBounds(t *testing.T) {
	for _, age := range []int{17, 101, 0, -4, 150} {
		_, err := ValidateInput(Input{Age: intPtr(age)})
		assert.ErrorIs(t, err, ErrAge, "age %d", age)
	}
	for _, age := range []int{18, 19, 50, 99, 100} {
		_, err := ValidateInput(Input{Age: intPtr(age)})
		assert.NoError(t, err, "age %d", age)
	}
}

func TestValidateInputGender(t *testing.T) {
	for _, g := range []string{"male", "female", "MALE", "Female", "mAlE"} {
		_, err := ValidateInput(Input{Gender: strPtr(g)})
		assert.NoError(t, err, "gender %q", g)
	}
	for _, g := range []string{"", "other", "m", "males", "unknown"} {
		_, err := ValidateInput(Input{Gender: strPtr(g)})
		assert.ErrorIs(t, err, ErrGender, "gender %q", g)
	}
}

func TestNormalizeGender(t *testing.T) {
	assert.Equal(t, GenderMale, NormalizeGender("male"))
	assert.Equal(t, GenderMale, NormalizeGender("MALE"))
	assert.Equal(t, GenderFemale, NormalizeGender("female"))
	assert.Equal(t, GenderFemale, NormalizeGender("Female"))
}

func TestValidateInputNameLength(t *testing.T) {
	atLimit := strings.Repeat("a", shared.MaxActorNameLen)
	_, err := ValidateInput(Input{Name: strPtr(atLimit)})
	assert.NoError(t, err)

	_, err = ValidateInput(Input{Name: strPtr(atLimit + "a")})
	assert.ErrorIs(t, err, ErrName)
}

func TestValidateInputMoviesPlaceholders(t *testing.T) {
	assignments, err := ValidateInput(Input{Movies: idsPtr([]int64{3, 1, 7})})
	require.NoError(t, err)
	require.Len(t, assignments, 3)
	assert.Equal(t, int64(3), assignments[0].MovieID)
	assert.Equal(t, int64(1), assignments[1].MovieID)
	assert.Equal(t, int64(7), assignments[2].MovieID)
	for _, a := range assignments {
		assert.Zero(t, a.ActorID, "placeholder must not carry an actor id yet")
	}
}

func TestValidateInputAbsentFields(t *testing.T) {
	assignments, err := ValidateInput(Input{})
	require.NoError(t, err)
	assert.Nil(t, assignments)
}

func TestFieldError(t *testing.T) {
	assert.ErrorIs(t, FieldError("name"), ErrName)
	assert.ErrorIs(t, FieldError("age"), ErrAge)
	assert.ErrorIs(t, FieldError("gender"), ErrGender)
	assert.ErrorIs(t, FieldError("movies"), ErrMovies)
	assert.NoError(t, FieldError("unknown"))
}
