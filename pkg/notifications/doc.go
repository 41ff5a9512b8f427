// Package notifications keeps the transient toast messages shown to the
// shopper. Messages are held in memory in arrival order and remove
// themselves once their display duration has elapsed.
//
//	q := notifications.NewQueue()
//	defer q.Close()
//
//	q.Success("Order placed", "Checkout")
//	for _, n := range q.List() {
//		fmt.Println(n.Type, n.Message)
//	}
//
// Renderers follow changes through Subscribe, which yields the full list
// after every enqueue, dismissal or expiry. A Deliverer can be attached to
// mirror each new notification elsewhere, for example into the log.
package notifications
