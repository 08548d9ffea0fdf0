// Package driver provides the delivery driver resource referenced by the
// order lifecycle. Drivers are owned by logistics companies; the core only
// needs their identity, contact snapshot fields, and the exclusivity flag
// that prevents double-booking a driver onto two concurrent deliveries.
package driver
