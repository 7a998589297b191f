package driver

import (
	"github.com/Carmen-Shannon/oxy-glow/common"
)

// current is the process-wide device installed by Init.
// The whole render model is single-threaded, so no synchronization is applied:
// Init, Shutdown and every pipeline must run on the goroutine owning the graphics context.
var current Device

// Init installs the process-wide device. It must be called once, before any
// pipeline is constructed without an explicit device, and is never re-entered:
// a second call without an intervening Shutdown returns ErrAlreadyInitialized.
//
// Parameters:
//   - d: the device of the current graphics context
//
// Returns:
//   - error: ErrAlreadyInitialized if a device is already installed
func Init(d Device) error {
	Require(!IsNil(d), "driver: Init requires a non-nil Device")
	if current != nil {
		return ErrAlreadyInitialized
	}
	current = d
	common.Logger().Info("driver initialized")
	return nil
}

// Current returns the process-wide device, if one is installed.
//
// Returns:
//   - Device: the installed device, or nil
//   - bool: true if a device is installed
func Current() (Device, bool) {
	return current, current != nil
}

// Shutdown removes the process-wide device. Pipelines that already hold the
// device keep working; new pipelines need a new Init or an explicit device.
func Shutdown() {
	if current == nil {
		return
	}
	current = nil
	common.Logger().Info("driver shut down")
}
