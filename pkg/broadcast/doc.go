// Package broadcast fans out typed values from one writer to many readers.
//
// MemoryBroadcaster delivers every message to every subscriber and drops
// slow consumers instead of blocking the writer. Signal holds a current
// value: new subscribers receive it immediately and a reader that falls
// behind only ever sees the newest value.
//
//	sig := broadcast.NewSignal(theme.Dark)
//	defer sig.Close()
//
//	sub := sig.Subscribe(ctx)
//	for msg := range sub.Receive(ctx) {
//		apply(msg.Data)
//	}
package broadcast
