package game

import "errors"

// Refusal conditions surfaced to the host layer. None of them are fatal:
// every one leaves the world in a consistent state and the same command can
// be retried on a later tick.
var (
	ErrCargoFull         = errors.New("cargo hold is full")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrMaxTierReached    = errors.New("already at maximum tier")
	ErrNotAtHarbor       = errors.New("not inside a harbor zone")
	ErrTooFastToDock     = errors.New("too fast to interact with the harbor")
	ErrCapsized          = errors.New("vessel is capsized")
	ErrNotCapsized       = errors.New("vessel is not capsized")
	ErrStillRighting     = errors.New("vessel is still righting")
	ErrRigBusy           = errors.New("rig is already deployed")
	ErrRigIdle           = errors.New("rig is not deployed")
)
