// Package lotv1 holds the generated gRPC contract of the lot service.
// Sources live under api/lot/v1.
package lotv1

//go:generate protoc -I ../../../api --go_out=../../.. --go_opt=module=github.com/fekuna/brewops-lot-service --go-grpc_out=../../.. --go-grpc_opt=module=github.com/fekuna/brewops-lot-service lot/v1/lot.proto lot/v1/alert.proto
