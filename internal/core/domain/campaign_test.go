package domain

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPendingApproval, StatusActive},
		{StatusPendingApproval, StatusRejected},
		{StatusActive, StatusPaused},
		{StatusActive, StatusCompleted},
		{StatusPaused, StatusActive},
		{StatusPaused, StatusCompleted},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be legal", tc.from, tc.to)
		}
	}

	forbidden := []struct{ from, to Status }{
		{StatusPendingApproval, StatusPaused},
		{StatusPendingApproval, StatusCompleted},
		{StatusActive, StatusRejected},
		{StatusCompleted, StatusActive},
		{StatusRejected, StatusActive},
		{StatusCompleted, StatusPaused},
	}
	for _, tc := range forbidden {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be illegal", tc.from, tc.to)
		}
	}
}

func TestLifecycleMethods(t *testing.T) {
	c := Campaign{Status: StatusActive}
	if err := c.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if err := c.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if err := c.Archive(); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if c.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", c.Status)
	}

	// Terminal states reject every move and keep the status.
	if err := c.Resume(); err != ErrIllegalTransition {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if c.Status != StatusCompleted {
		t.Fatalf("failed transition mutated status to %s", c.Status)
	}
}

// TestResumeIsNotApproval pins the event distinction on the shared
// target status: resume and approve both land on active, but each is
// legal from exactly one source status.
func TestResumeIsNotApproval(t *testing.T) {
	pending := Campaign{Status: StatusPendingApproval}
	if err := pending.Resume(); err != ErrIllegalTransition {
		t.Fatalf("resume of a pending campaign: got %v, want ErrIllegalTransition", err)
	}
	if pending.Status != StatusPendingApproval {
		t.Fatalf("failed resume mutated status to %s", pending.Status)
	}

	paused := Campaign{Status: StatusPaused}
	if err := paused.Approve(); err != ErrIllegalTransition {
		t.Fatalf("approve of a paused campaign: got %v, want ErrIllegalTransition", err)
	}
	if paused.Status != StatusPaused {
		t.Fatalf("failed approve mutated status to %s", paused.Status)
	}

	if err := pending.Approve(); err != nil {
		t.Fatalf("Approve from pending: %v", err)
	}
	if err := paused.Resume(); err != nil {
		t.Fatalf("Resume from paused: %v", err)
	}
}

func TestIsExposureGranting(t *testing.T) {
	if !IsExposureGranting(StatusActive) {
		t.Fatal("active must grant exposure")
	}
	for _, s := range []Status{StatusPendingApproval, StatusPaused, StatusCompleted, StatusRejected} {
		if IsExposureGranting(s) {
			t.Fatalf("%s must not grant exposure", s)
		}
	}
}
