// Package collection owns the ordered list of timers and the current
// selection.
//
// The Manager is the single owner of timer state. User actions (add,
// delete, select, edit, pause) and periodic ticks all go through it and
// are serialized by its mutex, so a completion scan is atomic with respect
// to user actions.
//
// # Invariants
//
//   - Timer IDs are unique.
//   - The collection is never observed empty: deleting the last timer
//     immediately adds a fresh default timer.
//   - 0 <= current < len(timers) at all times.
//
// # Change Notification
//
// Every mutation invokes the OnChange observer with a snapshot of the
// collection after the lock is released. The application uses this to
// persist timers.
package collection
