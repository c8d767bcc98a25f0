//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2024 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package grpcconn

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

func newManager(t *testing.T, maxConns int, timeout time.Duration) *ConnManager {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	t.Cleanup(func() { _ = lis.Close() })

	logger, _ := test.NewNullLogger()
	m, err := NewConnManager(maxConns, timeout, prometheus.NewPedanticRegistry(), logger,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.Nil(t, err)
	t.Cleanup(func() { _ = m.Close() })

	return m
}

func TestNewConnManagerValidation(t *testing.T) {
	tests := []struct {
		name     string
		maxConns int
		timeout  time.Duration
		wantErr  string
	}{
		{name: "zero maxOpenConns", maxConns: 0, timeout: time.Minute, wantErr: "grpcconn: maxOpenConns must be > 0, got 0"},
		{name: "negative maxOpenConns", maxConns: -1, timeout: time.Minute, wantErr: "grpcconn: maxOpenConns must be > 0, got -1"},
		{name: "zero timeout", maxConns: 10, timeout: 0, wantErr: "grpcconn: timeout must be > 0, got 0s"},
		{name: "negative timeout", maxConns: 10, timeout: -time.Second, wantErr: "grpcconn: timeout must be > 0, got -1s"},
	}

	logger, _ := test.NewNullLogger()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConnManager(tt.maxConns, tt.timeout, prometheus.NewPedanticRegistry(), logger)
			require.NotNil(t, err)
			require.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestGetConnCachesPerAddress(t *testing.T) {
	m := newManager(t, 10, time.Minute)

	c1, err := m.GetConn("bufnet")
	require.Nil(t, err)
	c2, err := m.GetConn("bufnet")
	require.Nil(t, err)
	require.Same(t, c1, c2)
}

func TestGetConnSingleFlight(t *testing.T) {
	m := newManager(t, 10, time.Minute)

	const n = 25
	conns := make([]*grpc.ClientConn, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			c, err := m.GetConn("bufnet")
			if err != nil {
				t.Errorf("GetConn: %v", err)
				return
			}
			conns[idx] = c
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		require.Same(t, conns[0], conns[i])
	}
}

func TestGetConnEvictsExpiredAtCapacity(t *testing.T) {
	m := newManager(t, 1, 30*time.Millisecond)

	c1, err := m.GetConn("bufnet1")
	require.Nil(t, err)

	// let the first entry age past the timeout
	time.Sleep(50 * time.Millisecond)

	c2, err := m.GetConn("bufnet2")
	require.Nil(t, err)
	require.NotSame(t, c1, c2)
	require.Equal(t, connectivity.Shutdown, c1.GetState())
}

func TestGetConnRejectedAtCapacity(t *testing.T) {
	m := newManager(t, 1, time.Minute)

	_, err := m.GetConn("bufnet1")
	require.Nil(t, err)

	_, err = m.GetConn("bufnet2")
	require.NotNil(t, err)
	require.Equal(t, "connection limit reached and no expired connections available", err.Error())
}

func TestCloseConn(t *testing.T) {
	m := newManager(t, 10, time.Minute)

	c1, err := m.GetConn("bufnet")
	require.Nil(t, err)
	require.Nil(t, m.CloseConn("bufnet"))
	require.Equal(t, connectivity.Shutdown, c1.GetState())

	// a fresh dial replaces the closed entry
	c2, err := m.GetConn("bufnet")
	require.Nil(t, err)
	require.NotSame(t, c1, c2)

	require.NotNil(t, m.CloseConn("nonexistent"))
}

func TestManagerRejectsUseAfterClose(t *testing.T) {
	m := newManager(t, 10, time.Minute)

	c1, err := m.GetConn("bufnet")
	require.Nil(t, err)
	require.Nil(t, m.Close())
	require.Equal(t, connectivity.Shutdown, c1.GetState())

	_, err = m.GetConn("bufnet")
	require.NotNil(t, err)
	require.Equal(t, "connection manager is closed", err.Error())

	err = m.CloseConn("bufnet")
	require.NotNil(t, err)
	require.Equal(t, "connection manager is closed", err.Error())
}

func TestBasicAuthHeader(t *testing.T) {
	// base64("alice:s3cr3t")
	require.Equal(t, "Basic YWxpY2U6czNjcjN0", BasicAuthHeader("alice", "s3cr3t"))
	// base64("al!ce:p@ss:word")
	require.Equal(t, "Basic YWwhY2U6cEBzczp3b3Jk", BasicAuthHeader("al!ce", "p@ss:word"))
}

func requireAuthMetadata(t *testing.T, ctx context.Context, auth string) {
	t.Helper()

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	require.Equal(t, []string{auth}, md.Get("authorization"))
}

func TestBasicAuthUnaryInterceptor(t *testing.T) {
	auth := BasicAuthHeader("bob", "pwd")
	interceptor := BasicAuthUnaryInterceptor(auth)

	tests := []struct {
		name string
		ctx  context.Context
	}{
		{name: "no existing metadata", ctx: context.Background()},
		{name: "existing metadata preserved", ctx: metadata.NewOutgoingContext(
			context.Background(), metadata.Pairs("foo", "bar"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoked := false
			err := interceptor(tt.ctx, "/pkg.Svc/Method", nil, nil, nil,
				func(ctx context.Context, _ string, _, _ interface{},
					_ *grpc.ClientConn, _ ...grpc.CallOption,
				) error {
					invoked = true
					requireAuthMetadata(t, ctx, auth)
					if md, _ := metadata.FromOutgoingContext(tt.ctx); len(md.Get("foo")) > 0 {
						outMD, _ := metadata.FromOutgoingContext(ctx)
						require.Equal(t, []string{"bar"}, outMD.Get("foo"))
					}
					return nil
				})
			require.Nil(t, err)
			require.True(t, invoked)
		})
	}
}

type fakeClientStream struct{ ctx context.Context }

func (f *fakeClientStream) Header() (metadata.MD, error) { return nil, nil }
func (f *fakeClientStream) Trailer() metadata.MD         { return nil }
func (f *fakeClientStream) CloseSend() error             { return nil }
func (f *fakeClientStream) Context() context.Context     { return f.ctx }
func (f *fakeClientStream) SendMsg(interface{}) error    { return nil }
func (f *fakeClientStream) RecvMsg(interface{}) error    { return nil }

func TestBasicAuthStreamInterceptor(t *testing.T) {
	auth := BasicAuthHeader("carol", "pw")
	interceptor := BasicAuthStreamInterceptor(auth)

	ctx := metadata.NewOutgoingContext(context.Background(), metadata.Pairs("x", "y"))
	desc := &grpc.StreamDesc{ServerStreams: true, ClientStreams: true}

	cs, err := interceptor(ctx, desc, nil, "/pkg.Svc/Stream",
		func(ctx context.Context, _ *grpc.StreamDesc, _ *grpc.ClientConn,
			_ string, _ ...grpc.CallOption,
		) (grpc.ClientStream, error) {
			requireAuthMetadata(t, ctx, auth)
			md, _ := metadata.FromOutgoingContext(ctx)
			require.Equal(t, []string{"y"}, md.Get("x"))
			return &fakeClientStream{ctx: ctx}, nil
		})
	require.Nil(t, err)
	require.NotNil(t, cs)
}
