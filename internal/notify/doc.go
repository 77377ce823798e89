// Package notify provides the console notifiers for breach alerts.
//
// Controller prints the controller frame (header and breach code in hex);
// Email prints a short message addressed to the configured recipient for
// out-of-range breaches. Both satisfy alert.Notifier and can be replaced by
// real transports without touching classification.
package notify
