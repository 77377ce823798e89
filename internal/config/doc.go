// Package config defines the typewise-alert settings and helpers to load,
// validate and save them in YAML format.
//
// Settings cover the notifier side only (recipient, default target, logging,
// metrics output). Temperature limits are fixed in the battery package and are
// deliberately absent here.
package config
