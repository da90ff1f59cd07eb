package viewstate

import "github.com/google/uuid"

// Listener receives the state a view model just entered. Listeners run
// synchronously on the caller's goroutine, after the field mutations that
// define the new state.
type Listener func(State)

type subscription struct {
	id uuid.UUID
	fn Listener
}

// notifier maintains an ordered subscriber list. Each state transition
// notifies every current subscriber exactly once, in subscription order.
type notifier struct {
	subs []subscription
}

// Subscribe registers fn and returns a token for Unsubscribe.
func (n *notifier) Subscribe(fn Listener) uuid.UUID {
	id := uuid.New()
	n.subs = append(n.subs, subscription{id: id, fn: fn})
	return id
}

// Unsubscribe removes the subscription identified by id. Unknown tokens are
// ignored.
func (n *notifier) Unsubscribe(id uuid.UUID) {
	for i, sub := range n.subs {
		if sub.id == id {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// notify delivers state to a snapshot of the current subscriber list, so a
// listener that unsubscribes mid-delivery does not skew its peers.
func (n *notifier) notify(state State) {
	subs := append([]subscription(nil), n.subs...)
	for _, sub := range subs {
		sub.fn(state)
	}
}
