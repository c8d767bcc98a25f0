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

// Package transport sends search requests over gRPC. It resolves a managed
// connection per call and speaks the raw wire codec, so no generated stubs
// are involved.
package transport

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	grpcconn "github.com/CShorten/weaviate-go-client/grpc/conn"
	protocol "github.com/CShorten/weaviate-go-client/grpc/protocol/v1"
	"github.com/CShorten/weaviate-go-client/usecases/query"
)

// Client invokes the search rpc on a fixed remote address. Connections are
// leased from the manager on every call, so an evicted or closed connection
// is replaced transparently.
type Client struct {
	conns  *grpcconn.ConnManager
	addr   string
	logger logrus.FieldLogger
}

func New(conns *grpcconn.ConnManager, addr string, logger logrus.FieldLogger) *Client {
	return &Client{
		conns:  conns,
		addr:   addr,
		logger: logger,
	}
}

// Search sends the request and decodes the reply. Every transport-level
// failure comes back as a query.ConnectionError so callers can match on it.
func (c *Client) Search(ctx context.Context, req *protocol.SearchRequest) (*protocol.SearchReply, error) {
	conn, err := c.conns.GetConn(c.addr)
	if err != nil {
		return nil, query.ConnectionError{Err: err}
	}

	reply := &protocol.SearchReply{}
	if err := conn.Invoke(ctx, protocol.SearchMethod, req, reply,
		grpc.ForceCodec(protocol.Codec{})); err != nil {
		c.logger.WithFields(logrus.Fields{
			"action":  "grpc_search",
			"address": c.addr,
		}).WithError(err).Debug("search rpc failed")
		return nil, query.ConnectionError{Err: err}
	}

	return reply, nil
}
