// Package ingest reads batch problem files into ready-to-solve graphs.
//
// Three whitespace-separated integer formats are understood, each holding
// any number of cases:
//
//   - timetable: "N M Q S", M lines "u v t0 P d", Q query nodes. An edge opens
//     at t0 and every P units after (P = 0: once). The stream ends at
//     "0 0 0 0" or EOF.
//   - static: "N M Q S", M lines "u v w", Q query nodes; same terminator.
//   - obstacle: "N M", "A B K G", G route intersections, M streets "u v d".
//     Intersections are numbered from 1 and streets are two-way. An obstacle
//     leaves the first route intersection at time 0 and blocks every street
//     of its route, both ways, while it is on it. The search starts at A at
//     time K and the single query is B. The stream ends at EOF.
//
// Every case becomes a Problem: a core.Graph plus source, start time and
// queries. Parse failures are wrapped with the case number and the index of
// the offending token.
package ingest
