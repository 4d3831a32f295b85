package port

// Topics published on the cross-view bus. Notifications carry no payload:
// subscribers re-read state through the usecase's merged reads, so a
// stale payload can never be rendered.
const (
	TopicCampaignChanged = "campaign-state-changed"
	TopicListingChanged  = "listing-promotion-changed"
	TopicWalletChanged   = "wallet-balance-changed"
)

// EventBus lets independent open views of the same account observe each
// other's local mutations without a remote round trip. It is strictly
// in-process and scoped to one session.
type EventBus interface {
	// Publish notifies every subscriber of the topic.
	Publish(topic string)

	// Subscribe registers a handler for a topic and returns the
	// deregistration func. Every consumer must call it on teardown or
	// the handler leaks.
	Subscribe(topic string, handler func()) (unsubscribe func())
}
