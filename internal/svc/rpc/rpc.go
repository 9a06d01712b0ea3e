package rpc

import (
	"context"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Instance is a request/reply RPC caller over the message queue. Each
// downstream service listens on its own subject and accepts JSON
// envelopes of the form {method, args}; it answers with {data} or
// {error}.
type Instance interface {
	Call(ctx context.Context, subject, method string, args []interface{}, reply interface{}) error
	Connected() bool
}

// Observer receives timing for every downstream call. Satisfied by the
// prometheus instance.
type Observer interface {
	ObserveDownstream(subject, method string, failed bool, d time.Duration)
}

type Options struct {
	Servers  []string
	Name     string
	Observer Observer
}

type request struct {
	Method string        `json:"method"`
	Args   []interface{} `json:"args"`
}

type response struct {
	Data  jsoniter.RawMessage `json:"data,omitempty"`
	Error *CallError          `json:"error,omitempty"`
}

// CallError is the error half of a downstream response envelope.
type CallError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *CallError) Error() string {
	return e.Message
}

type natsRPC struct {
	nc       *nats.Conn
	observer Observer
}

func New(ctx context.Context, o Options) (Instance, error) {
	nc, err := nats.Connect(
		strings.Join(o.Servers, ","),
		nats.Name(o.Name),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}

	go func() {
		<-ctx.Done()
		_ = nc.Drain()
	}()

	return &natsRPC{nc: nc, observer: o.Observer}, nil
}

func (r *natsRPC) Call(ctx context.Context, subject, method string, args []interface{}, reply interface{}) error {
	payload, err := json.Marshal(request{Method: method, Args: args})
	if err != nil {
		return err
	}

	start := time.Now()

	msg, err := r.nc.RequestWithContext(ctx, subject, payload)

	if r.observer != nil {
		r.observer.ObserveDownstream(subject, method, err != nil, time.Since(start))
	}

	if err != nil {
		zap.S().Errorw("rpc call failed",
			"subject", subject,
			"method", method,
			"error", err,
		)

		return err
	}

	return decodeResponse(msg.Data, reply)
}

func decodeResponse(data []byte, reply interface{}) error {
	var res response
	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}

	if res.Error != nil {
		return res.Error
	}

	if reply != nil && len(res.Data) != 0 {
		return json.Unmarshal(res.Data, reply)
	}

	return nil
}

func (r *natsRPC) Connected() bool {
	return r.nc.Status() == nats.CONNECTED
}
