// Package notifications allows the core scheduler to surface observability
// events — most importantly TimeSkewWarning — without
// coupling it to any concrete UI. Notices for domain state changes (device
// changed, window resized) are defined here too, but the window and audio
// packages do not raise them.
package notifications
