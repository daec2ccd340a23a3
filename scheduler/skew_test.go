package scheduler

import (
	"testing"

	"github.com/tendrilgames/chronoframe/notifications"
)

type recordingNotify struct {
	notices []notifications.Notice
}

func (r *recordingNotify) Notify(notice notifications.Notice, values ...interface{}) error {
	r.notices = append(r.notices, notice)
	return nil
}

func TestReportSkewBelowThresholdIsSilent(t *testing.T) {
	r := &recordingNotify{}
	var b notifications.Broadcaster
	b.Register(r)

	reportSkew(&b, 1000, -1)
	if len(r.notices) != 0 {
		t.Fatalf("expected no notice for sub-threshold skew, got %v", r.notices)
	}
}

func TestReportSkewBeyondThresholdNotifies(t *testing.T) {
	r := &recordingNotify{}
	var b notifications.Broadcaster
	b.Register(r)

	reportSkew(&b, 1000, -10)
	if len(r.notices) != 1 || r.notices[0] != notifications.NotifyTimeSkew {
		t.Fatalf("expected a single TimeSkew notice, got %v", r.notices)
	}
}

func TestReportSkewPositiveDeltaIsSilent(t *testing.T) {
	r := &recordingNotify{}
	var b notifications.Broadcaster
	b.Register(r)

	reportSkew(&b, 1000, 50)
	if len(r.notices) != 0 {
		t.Fatal("expected no notice for a late (positive) delta")
	}
}

func TestReportSkewNilNotifierIsSafe(t *testing.T) {
	reportSkew(nil, 1000, -10)
}
