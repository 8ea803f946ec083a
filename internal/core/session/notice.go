package session

// NoticeKind classifies a user-facing notification.
type NoticeKind string

const (
	NoticeRideStarted      NoticeKind = "ride_started"
	NoticeLocationFallback NoticeKind = "location_fallback"
	NoticeNoCampaign       NoticeKind = "no_campaign"
	NoticeMatchFailed      NoticeKind = "match_failed"
	NoticeUnauthorized     NoticeKind = "unauthorized"
	NoticeInvalidRequest   NoticeKind = "invalid_request"
	NoticeAdStarted        NoticeKind = "ad_started"
	NoticeAdCompleted      NoticeKind = "ad_completed"
	NoticePlaybackFailed   NoticeKind = "playback_failed"
	NoticeLogFailed        NoticeKind = "log_failed"
	NoticeRideEnded        NoticeKind = "ride_ended"
)

// Notice is delivered to the Notifier from the session loop. Transient
// kinds are informational and followed by an automatic retry;
// NoticeUnauthorized ends the ride and needs the driver to sign in again.
// NoticeInvalidRequest also ends the ride, since retrying the same
// request would be refused again.
type Notice struct {
	Kind       NoticeKind
	Message    string
	CampaignID string
	Err        error
}

// Notifier receives notices. Notify is called from the session loop and
// must not block.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}
