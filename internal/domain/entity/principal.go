// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// PrincipalKind represents the type of account a credential belongs to.
// A rider and a driver are separate principals even when they share an email.
type PrincipalKind string

const (
	// KindRider indicates a passenger account.
	KindRider PrincipalKind = "rider"
	// KindDriver indicates a driver account.
	KindDriver PrincipalKind = "driver"
)

// String returns the string representation of the PrincipalKind.
func (k PrincipalKind) String() string {
	return string(k)
}

// IsValid checks if the PrincipalKind is a valid value.
func (k PrincipalKind) IsValid() bool {
	switch k {
	case KindRider, KindDriver:
		return true
	default:
		return false
	}
}

// SessionCookieName returns the cookie that carries this kind's bearer token.
func (k PrincipalKind) SessionCookieName() string {
	return string(k) + "_session"
}
