// Package kernel provides core domain primitives shared across the domain
// model. It currently holds the UUID value object used as the identity type
// for orders and tracking records.
//
// The primitives are immutable, validate themselves, and are safe for
// concurrent use.
package kernel
