// Package user defines the generic principal of the authentication core.
//
// Principal is the capability interface the core programs against; User is
// the default entity implementing it, carrying identity and contact fields,
// hashed credentials and the typed LockoutState used by the sign-in state
// machine. Custom entities can participate in authentication by
// implementing Principal and supplying their own accessor maps.
//
// Service wraps the storage collaborator with CRUD operations and uniform
// error wrapping.
package user
