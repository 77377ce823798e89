// Package alert routes classified battery readings to notifiers.
//
// Router classifies a reading with the battery cooling policy and hands the
// breach to the notifier registered for the requested target. It keeps no
// state between calls and is safe for concurrent use.
package alert
