package api

import (
	"context"
	"strings"

	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// MetricsInterceptor records the count and duration of every unary call.
func MetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		timer := metrics.NewTimer()
		method := methodName(info.FullMethod)

		resp, err := handler(ctx, req)

		code := status.Code(err)
		metrics.APIRequestsTotal.WithLabelValues(method, code.String()).Inc()
		timer.ObserveDurationVec(metrics.APIRequestDuration, method)
		return resp, err
	}
}

// StreamLoggingInterceptor logs how every stream ended.
func StreamLoggingInterceptor() grpc.StreamServerInterceptor {
	logger := log.WithComponent("api")
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		timer := metrics.NewTimer()
		err := handler(srv, ss)

		code := status.Code(err)
		metrics.APIRequestsTotal.WithLabelValues(methodName(info.FullMethod), code.String()).Inc()
		logger.Debug().
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("duration", timer.Duration()).
			Msg("Stream closed")
		return err
	}
}

// methodName extracts the method from a full path, e.g.
// "/flowsched.v1.Scheduler/ListTasks" -> "ListTasks".
func methodName(fullMethod string) string {
	parts := strings.Split(fullMethod, "/")
	return parts[len(parts)-1]
}
