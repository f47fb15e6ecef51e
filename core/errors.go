package core

import "errors"

var (
	// Clock
	ErrClockSourceUnavailable = errors.New("clock_source_unavailable")
	ErrClockPlanInvalid       = errors.New("clock_plan_invalid")

	// Serial
	ErrPortMismatch         = errors.New("port_mismatch")
	ErrInvalidBaud          = errors.New("invalid_baud")
	ErrUnsupportedFormat    = errors.New("unsupported_format")
	ErrReceiveNotRouted     = errors.New("receive_not_routed")
	ErrReceiveUnimplemented = errors.New("receive_unimplemented")
	ErrChannelDisabled      = errors.New("channel_disabled")

	// Indicator
	ErrNoIndicators      = errors.New("no_indicators")
	ErrIndicatorReadback = errors.New("indicator_readback")

	// Tick
	ErrInvalidTickRate     = errors.New("invalid_tick_rate")
	ErrReloadOutOfRange    = errors.New("reload_out_of_range")
	ErrInterruptsUnmasked  = errors.New("interrupts_unmasked")
	ErrTickSourceUndefined = errors.New("tick_source_undefined")

	// Priority
	ErrLevelOutOfRange     = errors.New("level_out_of_range")
	ErrPriorityOrder       = errors.New("priority_order")
	ErrPriorityCollision   = errors.New("priority_collision")
	ErrPriorityReserved    = errors.New("priority_reserved")
	ErrEncodingUnsupported = errors.New("encoding_unsupported")

	// Capabilities
	ErrCapabilityUsed    = errors.New("capability_used")
	ErrCapabilityMissing = errors.New("capability_missing")
)
