// Package client is the Go client of the gophauth gRPC service. Failed calls
// come back as *authrpc.Error, which carries the service message and its
// HTTP-style status.
package client
