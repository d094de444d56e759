// Package checker audits the security posture of a single GraphQL endpoint.
//
// Architecture overview:
//
//   - Four probes share one Transport: reachability ({ __typename }), auth enforcement
//     (reachability again with the credential attached), subgraph ({ _service { sdl } })
//     and introspection ({ __schema { types { name } } }). Each probe issues one request
//     and returns an Outcome; transport failures never escape a probe.
//   - Run sequences the probes for one EndpointConfig, gates the later probes on the
//     earlier outcomes, and folds every failed check into a ViolationSet.
//   - The credential header is threaded through the probes as a value owned by one run,
//     so concurrent runs against different endpoints share nothing.
//   - GraphQLChecker adapts Run to the Checker interface consumed by cmd/.
package checker
