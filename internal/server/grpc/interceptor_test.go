package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLoggingInterceptor_PassesResponseThrough(t *testing.T) {
	s := newTestServer(&fakeItems{}, &fakeTasks{})

	info := &grpc.UnaryServerInfo{FullMethod: "/itemkeeper.service.ItemKeeperService/ListItems"}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.loggingInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestLoggingInterceptor_PassesErrorThrough(t *testing.T) {
	s := newTestServer(&fakeItems{}, &fakeTasks{})

	info := &grpc.UnaryServerInfo{FullMethod: "/itemkeeper.service.ItemKeeperService/GetItem"}
	want := status.Error(codes.NotFound, "item not found")

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, want
	}

	_, err := s.loggingInterceptor(context.Background(), nil, info, h)
	if !errors.Is(err, want) {
		t.Fatalf("expected handler error to pass through, got %v", err)
	}
}
