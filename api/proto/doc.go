// Package proto holds the flowsched.v1 wire contract: the messages and the
// Scheduler gRPC service generated from flowsched.proto, plus converters
// between the wire messages and pkg/types.
//
// Regenerate after editing flowsched.proto:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	    --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	    api/proto/flowsched.proto
package proto
