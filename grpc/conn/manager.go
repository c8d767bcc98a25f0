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

// Package grpcconn manages a bounded cache of client connections. Dialing is
// single-flight per address, capacity pressure evicts expired entries, and
// basic-auth interceptors can decorate every outgoing call.
package grpcconn

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

var errManagerClosed = errors.New("connection manager is closed")

type connEntry struct {
	conn     *grpc.ClientConn
	dialedAt time.Time
}

// ConnManager caches up to maxOpenConns client connections keyed by address.
// Entries older than timeout count as expired and may be evicted to make
// room; they are never evicted while under capacity.
type ConnManager struct {
	mu           sync.Mutex
	conns        map[string]*connEntry
	closed       bool
	maxOpenConns int
	timeout      time.Duration
	dialOpts     []grpc.DialOption
	logger       *logrus.Logger

	openConns    prometheus.Gauge
	dialsTotal   prometheus.Counter
	evictedTotal prometheus.Counter
}

func NewConnManager(maxOpenConns int, timeout time.Duration, reg prometheus.Registerer,
	logger *logrus.Logger, opts ...grpc.DialOption,
) (*ConnManager, error) {
	if maxOpenConns <= 0 {
		return nil, fmt.Errorf("grpcconn: maxOpenConns must be > 0, got %d", maxOpenConns)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("grpcconn: timeout must be > 0, got %v", timeout)
	}

	m := &ConnManager{
		conns:        make(map[string]*connEntry),
		maxOpenConns: maxOpenConns,
		timeout:      timeout,
		dialOpts:     opts,
		logger:       logger,
		openConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "grpc_client_connections_open",
			Help: "Currently cached client connections.",
		}),
		dialsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grpc_client_connections_dialed_total",
			Help: "Total connections dialed.",
		}),
		evictedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grpc_client_connections_evicted_total",
			Help: "Total connections evicted after expiry.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.openConns, m.dialsTotal, m.evictedTotal)
	}
	return m, nil
}

// GetConn returns the cached connection for addr, dialing one if necessary.
// Concurrent callers for the same address share a single dial.
func (m *ConnManager) GetConn(addr string) (*grpc.ClientConn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, errManagerClosed
	}

	if entry, ok := m.conns[addr]; ok {
		if time.Since(entry.dialedAt) <= m.timeout {
			return entry.conn, nil
		}
		// stale entry for the same address: replace it with a fresh dial
		m.evict(addr, entry)
	}

	if len(m.conns) >= m.maxOpenConns {
		if !m.evictExpired() {
			return nil, errors.New("connection limit reached and no expired connections available")
		}
	}

	conn, err := grpc.Dial(addr, m.dialOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", addr)
	}

	m.conns[addr] = &connEntry{conn: conn, dialedAt: time.Now()}
	m.openConns.Set(float64(len(m.conns)))
	m.dialsTotal.Inc()
	m.logger.WithFields(logrus.Fields{
		"action":  "grpc_dial",
		"address": addr,
	}).Debug("dialed new grpc connection")

	return conn, nil
}

// CloseConn closes and forgets the connection for addr.
func (m *ConnManager) CloseConn(addr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errManagerClosed
	}

	entry, ok := m.conns[addr]
	if !ok {
		return errors.Errorf("no connection for address %q", addr)
	}
	delete(m.conns, addr)
	m.openConns.Set(float64(len(m.conns)))
	return entry.conn.Close()
}

// Close closes every cached connection and rejects further use.
func (m *ConnManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var firstErr error
	for addr, entry := range m.conns {
		if err := entry.conn.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "close %s", addr)
		}
	}
	m.conns = nil
	m.openConns.Set(0)
	return firstErr
}

// evictExpired drops every entry older than the timeout. Reports whether
// any room was made. Callers must hold the lock.
func (m *ConnManager) evictExpired() bool {
	evicted := false
	for addr, entry := range m.conns {
		if time.Since(entry.dialedAt) > m.timeout {
			m.evict(addr, entry)
			evicted = true
		}
	}
	return evicted
}

func (m *ConnManager) evict(addr string, entry *connEntry) {
	delete(m.conns, addr)
	if err := entry.conn.Close(); err != nil {
		m.logger.WithFields(logrus.Fields{
			"action":  "grpc_evict",
			"address": addr,
		}).WithError(err).Warn("closing expired grpc connection")
	}
	m.openConns.Set(float64(len(m.conns)))
	m.evictedTotal.Inc()
}

// BasicAuthHeader builds the value of a basic-auth authorization header.
func BasicAuthHeader(username, password string) string {
	creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return "Basic " + creds
}

// BasicAuthUnaryInterceptor sets the authorization header on every unary
// call, preserving any metadata already present.
func BasicAuthUnaryInterceptor(authHeader string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{},
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption,
	) error {
		return invoker(withAuthorization(ctx, authHeader), method, req, reply, cc, opts...)
	}
}

// BasicAuthStreamInterceptor is the streaming counterpart of
// BasicAuthUnaryInterceptor.
func BasicAuthStreamInterceptor(authHeader string) grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn,
		method string, streamer grpc.Streamer, opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		return streamer(withAuthorization(ctx, authHeader), desc, cc, method, opts...)
	}
}

func withAuthorization(ctx context.Context, authHeader string) context.Context {
	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		md = metadata.MD{}
	} else {
		md = md.Copy()
	}
	md.Set("authorization", authHeader)
	return metadata.NewOutgoingContext(ctx, md)
}
