// Package client talks to the CyberShield REST API and owns the local state
// database handle. The Client interface is the seam the services depend on;
// HTTPClient is the real implementation, tests substitute fakes.
package client
