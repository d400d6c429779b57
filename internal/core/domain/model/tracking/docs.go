// Package tracking provides the tracking-ledger domain model: the Entry
// value object and the default-message table keyed by fulfillment status.
//
// The ledger itself is an append-only sequence of entries per order id,
// persisted by the tracking repository adapter. Entries are never edited or
// removed once appended, and their sequence reflects append order.
package tracking
