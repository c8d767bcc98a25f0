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

// Package monitoring instruments outgoing grpc calls with prometheus.
package monitoring

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/stats"
	"google.golang.org/grpc/status"
)

// Make sure GrpcStatsHandler always implements stats.Handler
var _ stats.Handler = &GrpcStatsHandler{}

type key int

const (
	keyMethodName key = 1

	gRPCTransportLabel = "gRPC"
)

// ClientMetrics bundles the collectors for outgoing grpc traffic. All
// vectors are labeled by transport and full method name.
type ClientMetrics struct {
	InflightRequests *prometheus.GaugeVec
	RequestDuration  *prometheus.HistogramVec

	// in bytes
	RequestSize  *prometheus.HistogramVec
	ResponseSize *prometheus.HistogramVec
}

func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	m := &ClientMetrics{
		InflightRequests: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "grpc_client_inflight_requests",
			Help: "Number of rpcs currently in flight.",
		}, []string{"transport", "method"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grpc_client_request_duration_seconds",
			Help:    "Duration of completed rpcs.",
			Buckets: prometheus.DefBuckets,
		}, []string{"transport", "method", "status_code"}),
		RequestSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grpc_client_request_size_bytes",
			Help:    "Wire size of outgoing payloads.",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}, []string{"transport", "method"}),
		ResponseSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grpc_client_response_size_bytes",
			Help:    "Wire size of incoming payloads.",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}, []string{"transport", "method"}),
	}
	if reg != nil {
		reg.MustRegister(m.InflightRequests, m.RequestDuration, m.RequestSize, m.ResponseSize)
	}
	return m
}

// StatsHandler tracks in-flight rpcs and payload sizes. Pass it to the dial
// options via grpc.WithStatsHandler.
func (m *ClientMetrics) StatsHandler() stats.Handler {
	return &GrpcStatsHandler{
		inflightRequests: m.InflightRequests,
		requestSize:      m.RequestSize,
		responseSize:     m.ResponseSize,
	}
}

type GrpcStatsHandler struct {
	inflightRequests *prometheus.GaugeVec

	// in bytes
	requestSize  *prometheus.HistogramVec
	responseSize *prometheus.HistogramVec
}

func (g *GrpcStatsHandler) TagRPC(ctx context.Context, info *stats.RPCTagInfo) context.Context {
	return context.WithValue(ctx, keyMethodName, info.FullMethodName)
}

func (g *GrpcStatsHandler) HandleRPC(ctx context.Context, rpcStats stats.RPCStats) {
	fullMethodName, ok := ctx.Value(keyMethodName).(string)
	if !ok {
		return
	}

	switch s := rpcStats.(type) {
	case *stats.Begin:
		g.inflightRequests.WithLabelValues(gRPCTransportLabel, fullMethodName).Inc()
	case *stats.End:
		g.inflightRequests.WithLabelValues(gRPCTransportLabel, fullMethodName).Dec()
	case *stats.OutPayload:
		// on the client the outgoing payload is the request
		g.requestSize.WithLabelValues(gRPCTransportLabel, fullMethodName).Observe(float64(s.WireLength))
	case *stats.InPayload:
		g.responseSize.WithLabelValues(gRPCTransportLabel, fullMethodName).Observe(float64(s.WireLength))
	case *stats.InHeader, *stats.InTrailer, *stats.OutHeader, *stats.OutTrailer:
		// headers and trailers carry no useful size information here
	}
}

func (g *GrpcStatsHandler) TagConn(ctx context.Context, _ *stats.ConnTagInfo) context.Context {
	return ctx
}

func (g *GrpcStatsHandler) HandleConn(_ context.Context, _ stats.ConnStats) {
	// Don't need
}

// UnaryClientInstrument observes the duration and status code of every
// outgoing unary rpc.
func UnaryClientInstrument(hist *prometheus.HistogramVec) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{},
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption,
	) error {
		begin := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		observe(hist, method, err, time.Since(begin))
		return err
	}
}

func observe(hist *prometheus.HistogramVec, method string, err error, duration time.Duration) {
	labelValues := []string{
		gRPCTransportLabel,
		method,
		errorToStatus(err),
	}
	hist.WithLabelValues(labelValues...).Observe(duration.Seconds())
}

func errorToStatus(err error) string {
	return errorToGrpcCode(err).String()
}

func errorToGrpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}

	if errors.Is(err, context.Canceled) {
		return codes.Canceled
	}

	type grpcStatus interface {
		GRPCStatus() *status.Status
	}

	var g grpcStatus
	if errors.As(err, &g) {
		st := g.GRPCStatus()
		if st != nil {
			return st.Code()
		}
	}
	return codes.Unknown
}
