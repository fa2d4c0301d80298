// Package metrics exports search statistics to Prometheus.
//
// A Collector implements dijkstra.Recorder: pass it to dijkstra.WithRecorder
// and every finished search adds its Stats to the counters and its wall time
// to the duration histogram. Collectors register on a caller-supplied
// prometheus.Registerer so tests and batch runs can use private registries.
//
//	reg := prometheus.NewRegistry()
//	col, err := metrics.NewCollector("timetable", reg)
//	...
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithRecorder(col))
package metrics
