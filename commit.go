package easel

import "github.com/google/uuid"

// PlacementAnchor is the pose a placement is committed to. It is issued at
// most once per session and consumed by the PlacementController.
type PlacementAnchor struct {
	RegionID  uuid.UUID
	Transform Mat4
	Consumed  bool
}

// CommitDecider turns the first sufficiently large region of a session into
// a PlacementAnchor. Later qualifying updates are ignored until Reset, so
// repeated large-plane updates can never place a second object.
type CommitDecider struct {
	issued   *PlacementAnchor
	disabled bool
}

// NewCommitDecider creates an armed decider.
func NewCommitDecider() *CommitDecider {
	return &CommitDecider{}
}

// TryCommit returns a new anchor carrying transform unchanged, or nil if an
// anchor was already issued this session or commits are disabled.
func (d *CommitDecider) TryCommit(regionID uuid.UUID, transform Mat4) *PlacementAnchor {
	if d.issued != nil || d.disabled {
		return nil
	}
	d.issued = &PlacementAnchor{RegionID: regionID, Transform: transform}
	debugf("commit: region %s at (%.3f, %.3f, %.3f)", regionID,
		transform[3], transform[7], transform[11])
	return d.issued
}

// SetEnabled gates TryCommit without disarming it (tracking unavailable).
func (d *CommitDecider) SetEnabled(enabled bool) {
	d.disabled = !enabled
}

// Enabled reports whether TryCommit may currently succeed.
func (d *CommitDecider) Enabled() bool {
	return !d.disabled && d.issued == nil
}

// Pending returns the issued anchor if it has not been consumed yet.
func (d *CommitDecider) Pending() *PlacementAnchor {
	if d.issued == nil || d.issued.Consumed {
		return nil
	}
	return d.issued
}

// Issued returns the anchor issued this session, if any.
func (d *CommitDecider) Issued() *PlacementAnchor {
	return d.issued
}

// Reset re-arms the decider for a new placement session.
func (d *CommitDecider) Reset() {
	d.issued = nil
}
