// Package order provides the Order aggregate root and its value objects.
//
// The package includes:
//   - Order: the aggregate managing identity, line items, totals, and the
//     two status axes (payment, fulfillment)
//   - Status / PaymentStatus: the fulfillment progression and payment states
//   - Item: an immutable line-item snapshot captured at purchase time
//   - Address: the freeform shipping address
//
// Key business rules:
//   - Orders are created pending/pending and mutated only through
//     ConfirmPayment and SetStatus.
//   - The fulfillment progression pending -> confirmed -> packed -> shipped
//     -> in_transit -> out_for_delivery -> delivered is canonical but not
//     enforced on manual updates; the set of status labels is open.
//   - Price arithmetic is caller-supplied and trusted.
package order
