// Package timing models when a directed edge may be traversed.
//
// An edge in a time-dependent network is described by a Schedule: a fixed,
// non-negative transit duration plus an availability rule that decides how long
// a traveller who reaches the tail at time t must wait before departing.
// The search driver only ever asks one question of a Schedule:
//
//	timeAtHead, ok := s.Traverse(arrivalAtTail)
//
// and adds nothing else to its labels. Separating "waiting" from "transit" keeps
// every time-dependent edge a non-negative increment of the running label, so
// the classical Dijkstra finality argument still holds.
//
// Availability kinds:
//
//   - KindAlways:   usable at any time; wait is always zero.
//   - KindWindow:   usable during [start, start+transit) only once.
//     Arrival before the window waits for it, arrival inside departs
//     immediately, arrival at or after the end makes the edge unreachable.
//   - KindPeriodic: the window recurs every Period units starting at Start.
//     Never unreachable.
//   - KindBlocked:  an obstacle occupies the edge during [start, start+transit).
//     Arrival inside that interval waits for the obstacle to leave;
//     any other arrival departs immediately.
//
// Errors (sentinel):
//
//   - ErrNegativeDuration if a transit duration is < 0.
//   - ErrNegativePeriod   if a period is < 0.
//
// Schedules are small immutable values and are safe to copy and share.
package timing
