package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalKind_IsValid(t *testing.T) {
	assert.True(t, KindRider.IsValid())
	assert.True(t, KindDriver.IsValid())
	assert.False(t, PrincipalKind("admin").IsValid())
	assert.False(t, PrincipalKind("").IsValid())
}

func TestPrincipalKind_SessionCookieName(t *testing.T) {
	assert.Equal(t, "rider_session", KindRider.SessionCookieName())
	assert.Equal(t, "driver_session", KindDriver.SessionCookieName())
}

func TestVehicleType_IsValid(t *testing.T) {
	for _, vt := range []VehicleType{VehicleTypeCar, VehicleTypeBike, VehicleTypeAuto, VehicleTypeOther} {
		assert.True(t, vt.IsValid(), vt)
	}
	assert.False(t, VehicleType("spaceship").IsValid())
	assert.False(t, VehicleType("").IsValid())
}
