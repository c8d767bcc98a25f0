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

package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpcconn "github.com/CShorten/weaviate-go-client/grpc/conn"
	protocol "github.com/CShorten/weaviate-go-client/grpc/protocol/v1"
	"github.com/CShorten/weaviate-go-client/usecases/query"
)

type stubSearchServer struct {
	lastReq *protocol.SearchRequest
	reply   *protocol.SearchReply
	err     error
}

func (s *stubSearchServer) Search(_ context.Context, req *protocol.SearchRequest) (*protocol.SearchReply, error) {
	s.lastReq = req
	return s.reply, s.err
}

// rawSearchDesc registers the search rpc without generated stubs, decoding
// through the same codec the client forces.
var rawSearchDesc = grpc.ServiceDesc{
	ServiceName: protocol.ServiceName,
	HandlerType: (*interface{})(nil),
	Methods: []grpc.MethodDesc{{
		MethodName: "Search",
		Handler: func(srv interface{}, ctx context.Context,
			dec func(interface{}) error, _ grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			req := &protocol.SearchRequest{}
			if err := dec(req); err != nil {
				return nil, err
			}
			return srv.(*stubSearchServer).Search(ctx, req)
		},
	}},
}

func startSearchServer(t *testing.T, stub *stubSearchServer) *bufconn.Listener {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer(grpc.ForceServerCodec(protocol.Codec{}))
	server.RegisterService(&rawSearchDesc, stub)

	go func() {
		if err := server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			t.Logf("serve: %v", err)
		}
	}()
	t.Cleanup(server.Stop)

	return lis
}

func newTestClient(t *testing.T, lis *bufconn.Listener) *Client {
	t.Helper()

	logger, _ := test.NewNullLogger()
	conns, err := grpcconn.NewConnManager(2, time.Minute, prometheus.NewPedanticRegistry(), logger,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.Nil(t, err)
	t.Cleanup(func() { _ = conns.Close() })

	return New(conns, "bufnet", logger)
}

func TestSearchOverTheWire(t *testing.T) {
	stub := &stubSearchServer{
		reply: &protocol.SearchReply{
			Took: 0.42,
			Results: []*protocol.SearchResult{{
				Metadata: &protocol.MetadataResult{
					Id:              "bea5d3c2-e625-46e8-97a3-b8e6b34df45b",
					Distance:        0.25,
					DistancePresent: true,
				},
			}},
		},
	}
	client := newTestClient(t, startSearchServer(t, stub))

	reply, err := client.Search(context.Background(), &protocol.SearchRequest{
		Collection: "Author",
		Limit:      5,
		NearVector: &protocol.NearVector{VectorBytes: []byte{0, 0, 128, 63}},
		Metadata:   &protocol.MetadataRequest{Distance: true},
	})
	require.Nil(t, err)
	require.Equal(t, float32(0.42), reply.Took)
	require.Len(t, reply.Results, 1)
	require.True(t, reply.Results[0].Metadata.DistancePresent)
	require.Equal(t, float32(0.25), reply.Results[0].Metadata.Distance)

	// the request survived the round trip intact
	require.Equal(t, "Author", stub.lastReq.Collection)
	require.Equal(t, uint32(5), stub.lastReq.Limit)
	require.NotNil(t, stub.lastReq.NearVector)
	require.Equal(t, []byte{0, 0, 128, 63}, stub.lastReq.NearVector.VectorBytes)
	require.True(t, stub.lastReq.Metadata.Distance)
}

func TestSearchWrapsRPCErrors(t *testing.T) {
	stub := &stubSearchServer{
		err: status.Error(codes.Unavailable, "shutting down"),
	}
	client := newTestClient(t, startSearchServer(t, stub))

	_, err := client.Search(context.Background(), &protocol.SearchRequest{Collection: "Author"})
	require.NotNil(t, err)

	var connErr query.ConnectionError
	require.True(t, errors.As(err, &connErr))
	require.Equal(t, codes.Unavailable, status.Code(connErr.Err))
}

func TestSearchWrapsConnManagerErrors(t *testing.T) {
	logger, _ := test.NewNullLogger()
	conns, err := grpcconn.NewConnManager(1, time.Minute, prometheus.NewPedanticRegistry(), logger)
	require.Nil(t, err)
	require.Nil(t, conns.Close())

	client := New(conns, "bufnet", logger)
	_, err = client.Search(context.Background(), &protocol.SearchRequest{Collection: "Author"})
	require.NotNil(t, err)

	var connErr query.ConnectionError
	require.True(t, errors.As(err, &connErr))
	require.Contains(t, err.Error(), "connection manager is closed")
}
