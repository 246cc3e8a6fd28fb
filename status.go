package easel

// TrackingState is the camera tracking quality reported by the tracking
// subsystem.
type TrackingState uint8

const (
	TrackingNotAvailable TrackingState = iota // no pose; nothing can be committed
	TrackingLimited                           // pose available but degraded
	TrackingNormal                            // full tracking
)

// String returns the state name.
func (s TrackingState) String() string {
	switch s {
	case TrackingNotAvailable:
		return "notAvailable"
	case TrackingLimited:
		return "limited"
	case TrackingNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// TrackingReason qualifies TrackingLimited.
type TrackingReason uint8

const (
	ReasonNone TrackingReason = iota
	ReasonInitializing
	ReasonExcessiveMotion
	ReasonInsufficientFeatures
	ReasonRelocalizing
)

// String returns the reason name.
func (r TrackingReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonInitializing:
		return "initializing"
	case ReasonExcessiveMotion:
		return "excessiveMotion"
	case ReasonInsufficientFeatures:
		return "insufficientFeatures"
	case ReasonRelocalizing:
		return "relocalizing"
	default:
		return "unknown"
	}
}

// Status is the read-only projection the host UI renders as its status
// label and coaching hints.
type Status struct {
	Tracking    TrackingState
	Reason      TrackingReason
	Interrupted bool
	Failed      bool
	Err         string
	Placed      bool
	Message     string
}

// CanCommit reports whether a placement may be committed in this state.
func (s Status) CanCommit() bool {
	return !s.Failed && !s.Interrupted && s.Tracking != TrackingNotAvailable
}

// statusMessage picks the user-facing line for the current state.
func statusMessage(s Status) string {
	switch {
	case s.Failed:
		if s.Err != "" {
			return "Session failed: " + s.Err
		}
		return "Session failed"
	case s.Interrupted:
		return "Session interrupted"
	}
	switch s.Tracking {
	case TrackingNotAvailable:
		return "Tracking unavailable"
	case TrackingLimited:
		switch s.Reason {
		case ReasonInitializing:
			return "Initializing"
		case ReasonExcessiveMotion:
			return "Too much motion: slow down"
		case ReasonInsufficientFeatures:
			return "Not enough surface detail: point at a textured wall"
		case ReasonRelocalizing:
			return "Resuming session"
		}
		return "Tracking limited"
	}
	if s.Placed {
		return "Drag to move, pinch to scale, rotate with two fingers"
	}
	return "Point the camera at a wall"
}
