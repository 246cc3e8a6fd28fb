package easel

import "testing"

func TestCommitDeciderIssuesOnce(t *testing.T) {
	d := NewCommitDecider()
	if !d.Enabled() {
		t.Fatal("new decider should be armed")
	}

	a := d.TryCommit(wallID(1), facingWall)
	if a == nil {
		t.Fatal("first commit should succeed")
	}
	if a.RegionID != wallID(1) {
		t.Errorf("RegionID = %s", a.RegionID)
	}
	assertMatrix(t, "transform", a.Transform, facingWall)

	if d.TryCommit(wallID(2), Identity) != nil {
		t.Error("second commit in a session must fail")
	}
	if d.Enabled() {
		t.Error("decider should be spent")
	}
	if d.Issued() != a || d.Pending() != a {
		t.Error("Issued and Pending should return the anchor")
	}
}

func TestCommitDeciderPendingAfterConsume(t *testing.T) {
	d := NewCommitDecider()
	a := d.TryCommit(wallID(1), facingWall)
	a.Consumed = true
	if d.Pending() != nil {
		t.Error("consumed anchor is not pending")
	}
	if d.Issued() != a {
		t.Error("consumed anchor is still the issued one")
	}
}

func TestCommitDeciderReset(t *testing.T) {
	d := NewCommitDecider()
	d.TryCommit(wallID(1), facingWall)
	d.Reset()
	if d.Issued() != nil || d.Pending() != nil {
		t.Error("reset should forget the anchor")
	}
	if d.TryCommit(wallID(2), facingWall) == nil {
		t.Error("reset should re-arm the decider")
	}
}

func TestCommitDeciderDisabled(t *testing.T) {
	d := NewCommitDecider()
	d.SetEnabled(false)
	if d.Enabled() {
		t.Error("disabled decider reports enabled")
	}
	if d.TryCommit(wallID(1), facingWall) != nil {
		t.Error("disabled decider must not commit")
	}

	d.SetEnabled(true)
	if d.TryCommit(wallID(1), facingWall) == nil {
		t.Error("re-enabled decider should commit")
	}
}
