/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com

Package notify schedules best-effort local notifications for pending tasks:
a fixed-cadence check plus an immediate check whenever the pending view
changes, throttled to at most one notification per task per clock-hour.
*/
package notify

import "github.com/gen2brain/beeep"

// Permission mirrors the external capability's handshake states.
type Permission int

const (
	PermissionDefault Permission = iota // not yet asked
	PermissionGranted
	PermissionDenied
)

// Notifier is the external notification capability: a permission handshake
// and a fire-and-forget show call.
type Notifier interface {
	Permission() Permission
	RequestPermission() Permission
	Notify(title, body string) error
}

// DesktopNotifier delivers through the operating system's notification
// center. The OS applies its own per-app gating, so the handshake always
// reports granted; a user-level mute simply makes Notify a silent no-op.
type DesktopNotifier struct {
	icon string
}

// NewDesktopNotifier creates a desktop notifier with an optional icon path.
func NewDesktopNotifier(icon string) *DesktopNotifier {
	return &DesktopNotifier{icon: icon}
}

func (n *DesktopNotifier) Permission() Permission {
	return PermissionGranted
}

func (n *DesktopNotifier) RequestPermission() Permission {
	return PermissionGranted
}

func (n *DesktopNotifier) Notify(title, body string) error {
	return beeep.Notify(title, body, n.icon)
}
