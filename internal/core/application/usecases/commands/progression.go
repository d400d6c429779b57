package commands

import (
	"vastrakala/internal/core/domain/model/order"
)

// fallbackCity is the location placeholder used when an order has no
// shipping address or the address carries no city.
const fallbackCity = "Your City"

// fulfillmentStep describes one step of the simulated delivery timeline.
// An empty location means the step happens at the destination city.
type fulfillmentStep struct {
	status   order.Status
	message  string
	location string
}

// fulfillmentSteps is the fixed timeline replayed by the delivery simulation
// and walked one step at a time by the progression job.
var fulfillmentSteps = []fulfillmentStep{
	{status: order.StatusConfirmed, message: "Order confirmed and being processed", location: "Warehouse"},
	{status: order.StatusPacked, message: "Order has been packed", location: "Warehouse"},
	{status: order.StatusShipped, message: "Order dispatched via courier", location: "Shipping Hub"},
	{status: order.StatusInTransit, message: "Package in transit", location: "Distribution Center"},
	{status: order.StatusOutForDelivery, message: "Out for delivery", location: ""},
	{status: order.StatusDelivered, message: "Package delivered successfully", location: ""},
}

// stepFor returns the timeline step recording the given status.
func stepFor(status order.Status) (fulfillmentStep, bool) {
	for _, step := range fulfillmentSteps {
		if step.status == status {
			return step, true
		}
	}
	return fulfillmentStep{}, false
}

// stepLocation resolves the step's location, substituting the order's
// destination city (or the placeholder) for destination steps.
func stepLocation(step fulfillmentStep, o *order.Order) string {
	if step.location != "" {
		return step.location
	}

	if city, ok := o.ShippingAddress().City(); ok {
		return city
	}
	return fallbackCity
}
