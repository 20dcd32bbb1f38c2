package driver_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidDriver(t *testing.T) *driver.Driver {
	t.Helper()
	hash, err := driver.HashPassword("secret123")
	require.NoError(t, err)
	d, err := driver.NewDriver(kernel.NewUUID(), "Bob Smith", "+1 555 0200", hash)
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("should create active available driver", func(t *testing.T) {
		id := kernel.NewUUID()
		hash, err := driver.HashPassword("secret123")
		require.NoError(t, err)

		d, err := driver.NewDriver(id, "Bob Smith", "+1 555 0200", hash)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Bob Smith", d.Name())
		assert.Equal(t, "+15550200", d.Phone()) // whitespace stripped
		assert.True(t, d.IsAvailable())
		assert.True(t, d.IsActive())
	})

	t.Run("should fail with missing fields", func(t *testing.T) {
		var invalidID kernel.UUID

		d, err := driver.NewDriver(invalidID, "", "", "")

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "value is required: phone")
		assert.Contains(t, err.Error(), "value is required: passwordHash")
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("should restore persisted availability state", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.RestoreDriver(id, "Bob", "+15550200", "hash", false, true)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.False(t, d.IsAvailable())
		assert.True(t, d.IsActive())
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("should fail validation for nil and zero value drivers", func(t *testing.T) {
		var nilDriver *driver.Driver
		var zeroDriver driver.Driver

		assert.Equal(t, driver.ErrDriverIsNotConstructed, nilDriver.Validate())
		assert.Equal(t, driver.ErrDriverIsNotConstructed, zeroDriver.Validate())
	})
}

func TestDriver_MarkBusy(t *testing.T) {
	t.Run("should claim an available driver", func(t *testing.T) {
		d := newValidDriver(t)

		err := d.MarkBusy()

		require.NoError(t, err)
		assert.False(t, d.IsAvailable())
	})

	t.Run("should reject a second claim with a conflict", func(t *testing.T) {
		d := newValidDriver(t)
		require.NoError(t, d.MarkBusy())

		err := d.MarkBusy()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "driver is unavailable")
	})

	t.Run("should reject a claim on a deactivated driver", func(t *testing.T) {
		d := newValidDriver(t)
		d.Deactivate()

		err := d.MarkBusy()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "driver is deactivated")
	})
}

func TestDriver_Release(t *testing.T) {
	t.Run("should return a busy driver to the pool", func(t *testing.T) {
		d := newValidDriver(t)
		require.NoError(t, d.MarkBusy())

		d.Release()

		assert.True(t, d.IsAvailable())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		d := newValidDriver(t)

		d.Release()
		d.Release()

		assert.True(t, d.IsAvailable())
	})
}

func TestDriver_SetAvailability(t *testing.T) {
	t.Run("should toggle availability manually", func(t *testing.T) {
		d := newValidDriver(t)

		require.NoError(t, d.SetAvailability(false))
		assert.False(t, d.IsAvailable())

		require.NoError(t, d.SetAvailability(true))
		assert.True(t, d.IsAvailable())
	})

	t.Run("should prevent a deactivated driver from signing on", func(t *testing.T) {
		d := newValidDriver(t)
		d.Deactivate()

		err := d.SetAvailability(true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.False(t, d.IsAvailable())
	})

	t.Run("should allow a deactivated driver to sign off", func(t *testing.T) {
		d := newValidDriver(t)
		d.Deactivate()

		require.NoError(t, d.SetAvailability(false))
	})
}

func TestDriver_Password(t *testing.T) {
	t.Run("should verify the original password", func(t *testing.T) {
		d := newValidDriver(t)

		require.NoError(t, d.VerifyPassword("secret123"))
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		d := newValidDriver(t)

		err := d.VerifyPassword("wrong")

		require.Error(t, err)
		assert.Equal(t, driver.ErrInvalidCredentials, err)
	})

	t.Run("should reject hashing an empty password", func(t *testing.T) {
		_, err := driver.HashPassword("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should produce distinct hashes per call", func(t *testing.T) {
		h1, err := driver.HashPassword("secret123")
		require.NoError(t, err)
		h2, err := driver.HashPassword("secret123")
		require.NoError(t, err)

		assert.NotEqual(t, h1, h2) // bcrypt salts
	})
}
