package sample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"
)

func newTestSample(t *testing.T, category Category) *Sample {
	t.Helper()
	s, err := NewSample(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Ana María López",
		category,
		"fasting 12h",
	)
	require.NoError(t, err)
	return s
}

func newChemistryPayload(t *testing.T) ResultPayload {
	t.Helper()
	payload, err := NewResultPayload(CategoryBloodChemistry, validChemistryFields())
	require.NoError(t, err)
	return payload
}

func TestNewSample(t *testing.T) {
	t.Run("should create collected sample awaiting results", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)

		assert.NoError(t, s.Validate())
		assert.Equal(t, CategoryBloodChemistry, s.Category())
		assert.Equal(t, "Ana María López", s.PatientDisplayName())
		assert.Equal(t, "fasting 12h", s.Observations())
		assert.True(t, s.IsActive())
		assert.False(t, s.IsClientVisible())
		assert.False(t, s.HasResults())
		assert.Equal(t, 1, s.Version())
	})

	t.Run("should collect all constructor errors", func(t *testing.T) {
		_, err := NewSample(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, "", CategoryUnknown, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should validate non constructed sample", func(t *testing.T) {
		var s Sample
		assert.ErrorIs(t, s.Validate(), ErrSampleIsNotConstructed)
		assert.ErrorIs(t, (*Sample)(nil).Validate(), ErrSampleIsNotConstructed)
	})
}

func TestRestoreSample(t *testing.T) {
	t.Run("should restore released sample from persistence", func(t *testing.T) {
		payload := newChemistryPayload(t)
		createdAt := time.Date(2026, time.March, 5, 9, 30, 0, 0, time.UTC)

		s, err := RestoreSample(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Ana María López", CategoryBloodChemistry, "fasting 12h",
			true, true, &payload, createdAt, 3,
		)

		require.NoError(t, err)
		assert.True(t, s.IsClientVisible())
		assert.Equal(t, createdAt, s.CreatedAt())
		assert.Equal(t, 3, s.Version())
		restored, ok := s.Result()
		require.True(t, ok)
		assert.Equal(t, payload.Fields(), restored.Fields())
	})

	t.Run("should reject version below one", func(t *testing.T) {
		_, err := RestoreSample(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Ana María López", CategoryBloodChemistry, "",
			true, false, nil, time.Now().UTC(), 0,
		)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject payload of a different category", func(t *testing.T) {
		payload := newChemistryPayload(t)

		_, err := RestoreSample(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Ana María López", CategoryCompleteBloodCount, "",
			true, true, &payload, time.Now().UTC(), 1,
		)

		assert.ErrorIs(t, err, ErrCategoryMismatch)
	})
}

func TestSampleRegisterResults(t *testing.T) {
	t.Run("should release results to the patient in the same step", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)

		err := s.RegisterResults(newChemistryPayload(t))

		require.NoError(t, err)
		assert.True(t, s.HasResults())
		assert.True(t, s.IsClientVisible())
	})

	t.Run("should reject second registration", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)
		require.NoError(t, s.RegisterResults(newChemistryPayload(t)))

		err := s.RegisterResults(newChemistryPayload(t))

		assert.ErrorIs(t, err, ErrResultsAlreadyRegistered)
	})

	t.Run("should reject payload of a different category", func(t *testing.T) {
		s := newTestSample(t, CategoryCompleteBloodCount)

		err := s.RegisterResults(newChemistryPayload(t))

		assert.ErrorIs(t, err, ErrCategoryMismatch)
		assert.False(t, s.IsClientVisible())
	})

	t.Run("should reject unconstructed payload", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)

		err := s.RegisterResults(ResultPayload{})

		assert.ErrorIs(t, err, ErrResultPayloadIsNotConstructed)
	})

	t.Run("should reject registration on deactivated sample", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)
		s.Deactivate()

		err := s.RegisterResults(newChemistryPayload(t))

		assert.ErrorIs(t, err, ErrSampleInactive)
	})
}

func TestSampleEditResults(t *testing.T) {
	t.Run("should overwrite released payload", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)
		require.NoError(t, s.RegisterResults(newChemistryPayload(t)))

		corrected := validChemistryFields()
		corrected["glucose"] = 101.0
		payload, err := NewResultPayload(CategoryBloodChemistry, corrected)
		require.NoError(t, err)

		require.NoError(t, s.EditResults(payload))

		result, ok := s.Result()
		require.True(t, ok)
		assert.Equal(t, 101.0, result.Fields()["glucose"])
		assert.True(t, s.IsClientVisible())
	})

	t.Run("should reject edit before results exist", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)

		err := s.EditResults(newChemistryPayload(t))

		assert.ErrorIs(t, err, ErrResultsNotRegistered)
	})

	t.Run("should reject edit with a different category", func(t *testing.T) {
		s := newTestSample(t, CategoryCompleteBloodCount)
		payload, err := NewResultPayload(CategoryCompleteBloodCount, validBloodCountFields())
		require.NoError(t, err)
		require.NoError(t, s.RegisterResults(payload))

		assert.ErrorIs(t, s.EditResults(newChemistryPayload(t)), ErrCategoryMismatch)
	})

	t.Run("should reject edit on deactivated sample", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)
		require.NoError(t, s.RegisterResults(newChemistryPayload(t)))
		s.Deactivate()

		err := s.EditResults(newChemistryPayload(t))

		assert.ErrorIs(t, err, ErrSampleInactive)
	})
}

func TestSampleUpdateObservations(t *testing.T) {
	t.Run("should update observations before results exist", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)

		require.NoError(t, s.UpdateObservations("hemolyzed, recollected"))

		assert.Equal(t, "hemolyzed, recollected", s.Observations())
	})

	t.Run("should reject update after results exist", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)
		require.NoError(t, s.RegisterResults(newChemistryPayload(t)))

		err := s.UpdateObservations("late note")

		assert.ErrorIs(t, err, ErrResultsAlreadyRegistered)
		assert.Equal(t, "fasting 12h", s.Observations())
	})

	t.Run("should reject update on deactivated sample", func(t *testing.T) {
		s := newTestSample(t, CategoryBloodChemistry)
		s.Deactivate()

		assert.ErrorIs(t, s.UpdateObservations("note"), ErrSampleInactive)
	})
}

func TestSampleDeactivate(t *testing.T) {
	t.Run("should deactivate from any state", func(t *testing.T) {
		collected := newTestSample(t, CategoryBloodChemistry)
		collected.Deactivate()
		assert.False(t, collected.IsActive())

		released := newTestSample(t, CategoryBloodChemistry)
		require.NoError(t, released.RegisterResults(newChemistryPayload(t)))
		released.Deactivate()
		assert.False(t, released.IsActive())
		assert.True(t, released.IsClientVisible())
	})
}
