package services

import (
	"log/slog"

	pubnub "github.com/pubnub/go"
)

// Notifier fans feed changes out over a shared PubNub channel, alongside the
// store's own realtime subscriptions. Listeners treat every message as a cue
// to re-fetch; no diff payload is promised.
type Notifier struct {
	pn      *pubnub.PubNub
	channel string
}

func NewNotifier(pn *pubnub.PubNub, channel string) *Notifier {
	return &Notifier{pn: pn, channel: channel}
}

func (n *Notifier) publish(message map[string]any) {
	if n == nil || n.pn == nil {
		return
	}
	_, pnStatus, err := n.pn.Publish().
		Channel(n.channel).
		Message(message).
		Execute()
	if err != nil {
		slog.Warn("feed notify failed", "error", err, "status_code", pnStatus.StatusCode)
	}
}

func (n *Notifier) EventCreated(eventID string) {
	n.publish(map[string]any{"type": "event_created", "event_id": eventID})
}

func (n *Notifier) EventDeleted(eventID string) {
	n.publish(map[string]any{"type": "event_deleted", "event_id": eventID})
}

func (n *Notifier) CountsChanged(eventID string, interested, going int) {
	n.publish(map[string]any{
		"type":             "counts_changed",
		"event_id":         eventID,
		"interested_count": interested,
		"going_count":      going,
	})
}
