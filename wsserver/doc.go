// Package wsserver is the WebSocket façade: one session per connection,
// each owning its own *features.FeatureSet and *navgraph.Graph with no
// cross-session sharing and therefore no locking, matching spec §5's "no
// locks are required because each session owns its graph."
//
// Ported from original_source/server/{mod,handle,client_msg,server_msg,
// common}.rs and dgc.rs: a kebab-case {type, data} JSON envelope in both
// directions, the same six client message kinds, the same eight server
// message kinds (including the supplemented restricted-airspace kind present in
// handle.rs but dropped from the distilled spec.md), and a buffered debug-
// geometry channel per session draining to its own goroutine ahead of each
// request's final result message.
//
// Complexity: each client message is handled synchronously against that
// connection's own session; concurrent connections do not contend on any
// shared state.
package wsserver
