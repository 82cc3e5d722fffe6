package store

import (
	"context"
	"errors"
	"net"

	"github.com/redis/go-redis/v9"
)

// errorHook publishes connection failures without affecting the command result.
type errorHook struct {
	errs chan<- error
}

func (h *errorHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.publish(err)
		}
		return conn, err
	}
}

func (h *errorHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if isConnectionError(err) {
			h.publish(err)
		}
		return err
	}
}

func (h *errorHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if isConnectionError(err) {
			h.publish(err)
		}
		return err
	}
}

func (h *errorHook) publish(err error) {
	select {
	case h.errs <- err:
	default:
	}
}

// isConnectionError reports whether err came from the transport rather than
// from a Redis reply or the caller's context.
func isConnectionError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var replyErr redis.Error
	return !errors.As(err, &replyErr)
}
