// Package proto holds the gRPC service definition for itemkeeper.
// The Go bindings are generated next to the .proto file and are not
// committed; regenerate them with go generate.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative itemkeeper.proto
