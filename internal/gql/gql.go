package gql

import (
	"context"
	"fmt"
	"time"

	"github.com/fasthttp/router"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	goerrors "errors"

	apierrors "github.com/washtime/api/internal/errors"
	"github.com/washtime/api/internal/global"
	gqlauth "github.com/washtime/api/internal/gql/auth"
	"github.com/washtime/api/internal/middleware"
	"github.com/washtime/api/internal/structures"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type gqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// New starts the GraphQL HTTP server. It blocks until the listener
// fails or the application context is done.
func New(gCtx global.Context) error {
	port := gCtx.Config().Http.Ports.GQL
	if port == 0 {
		port = 80
	}

	schema, err := NewSchema(gCtx)
	if err != nil {
		return err
	}

	handler := gqlHandler(gCtx, schema)

	router := router.New()
	router.RedirectTrailingSlash = true

	route := func(ctx *fasthttp.RequestCtx) {
		if err := middleware.Auth(gCtx)(ctx); err != nil {
			ctx.Response.Header.Add("X-Auth-Failure", err.Error())
		}

		handler(ctx)
	}

	router.GET("/gql", route)
	router.POST("/gql", route)

	if gCtx.Config().Http.Graphiql {
		router.GET("/", graphiqlHandler())
	}

	router.HandleOPTIONS = true
	server := fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			start := time.Now()

			defer func() {
				if err := recover(); err != nil {
					zap.S().Errorw("panic in gql request handler",
						"panic", err,
						"status", ctx.Response.StatusCode(),
						"duration", int(time.Since(start)/time.Millisecond),
						"method", string(ctx.Method()),
						"path", string(ctx.Path()),
						"origin", string(ctx.Request.Header.Peek("Origin")),
					)
					ctx.Response.SetStatusCode(fasthttp.StatusInternalServerError)
				} else {
					mills := time.Since(start) / time.Millisecond
					status := ctx.Response.StatusCode()

					logFn := zap.S().Debugw
					if mills >= 500 {
						logFn = zap.S().Infow
					}
					if status >= 500 {
						logFn = zap.S().Errorw
					}

					logFn("gql request",
						"status", status,
						"duration", int(mills),
						"method", string(ctx.Method()),
						"path", string(ctx.Path()),
						"origin", string(ctx.Request.Header.Peek("Origin")),
					)
				}

				if prom := gCtx.Inst().Prometheus; prom != nil {
					prom.ObserveRequest(ctx.Response.StatusCode(), time.Since(start))
				}
			}()

			ctx.Response.Header.Set("Access-Control-Allow-Credentials", "true")
			ctx.Response.Header.Set("Access-Control-Allow-Headers", "*")
			ctx.Response.Header.Set("Access-Control-Allow-Methods", "*")
			ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")

			if ctx.IsOptions() {
				ctx.SetStatusCode(fasthttp.StatusNoContent)
				return
			}

			router.Handler(ctx)
		},
		ReadTimeout:        time.Second * 10,
		WriteTimeout:       time.Second * 10,
		CloseOnShutdown:    true,
		Name:               "WashTime - GQL",
		ReadBufferSize:     int(32 * 1024),
		MaxRequestBodySize: int(1 * 1024 * 1024),
	}

	go func() {
		<-gCtx.Done()

		_ = server.Shutdown()
	}()

	return server.ListenAndServe(fmt.Sprintf("%s:%d", gCtx.Config().Http.Addr, port))
}

func gqlHandler(gCtx global.Context, schema graphql.Schema) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		req, ok := parseRequest(ctx)
		if !ok {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			return
		}

		// request-scoped execution context: the application context for
		// downstream clients, the principal, and a fresh intent scope
		ectx := context.Context(gCtx)
		if actor, ok := ctx.UserValue(middleware.ActorKey).(*structures.User); ok {
			ectx = gqlauth.WithActor(ectx, actor)
		}
		ectx = gqlauth.WithScope(ectx, gqlauth.NewScope())

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        ectx,
		})

		result.Errors = presentErrors(result.Errors)

		body, err := json.Marshal(result)
		if err != nil {
			zap.S().Errorw("failed to marshal gql response",
				"error", err,
			)
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)

			return
		}

		ctx.Response.Header.Set("Content-Type", "application/json")
		ctx.SetBody(body)
	}
}

func parseRequest(ctx *fasthttp.RequestCtx) (gqlRequest, bool) {
	req := gqlRequest{}

	if ctx.IsGet() {
		args := ctx.QueryArgs()
		req.Query = string(args.Peek("query"))
		req.OperationName = string(args.Peek("operationName"))

		if raw := args.Peek("variables"); len(raw) > 0 {
			if err := json.Unmarshal(raw, &req.Variables); err != nil {
				return req, false
			}
		}

		return req, req.Query != ""
	}

	if err := json.Unmarshal(ctx.Request.Body(), &req); err != nil {
		return req, false
	}

	return req, req.Query != ""
}

// presentErrors backfills the extensions code for typed errors the
// engine formatted without asking them, i.e. when they arrived wrapped.
func presentErrors(errs []gqlerrors.FormattedError) []gqlerrors.FormattedError {
	for i := range errs {
		if errs[i].Extensions != nil {
			continue
		}

		orig := errs[i].OriginalError()
		for orig != nil {
			if re, ok := orig.(*apierrors.ResponseError); ok {
				errs[i].Extensions = re.Extensions()
				break
			}

			if wrapped, ok := orig.(*gqlerrors.Error); ok {
				orig = wrapped.OriginalError
				continue
			}

			orig = goerrors.Unwrap(orig)
		}
	}

	return errs
}

func graphiqlHandler() fasthttp.RequestHandler {
	page := []byte(`<!DOCTYPE html>
<html>
  <head>
    <title>WashTime GraphiQL</title>
    <link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
  </head>
  <body style="margin: 0;">
    <div id="graphiql" style="height: 100vh;"></div>
    <script crossorigin src="https://unpkg.com/react/umd/react.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/graphiql/graphiql.min.js"></script>
    <script>
      ReactDOM.render(
        React.createElement(GraphiQL, { fetcher: GraphiQL.createFetcher({ url: '/gql' }) }),
        document.getElementById('graphiql'),
      );
    </script>
  </body>
</html>`)

	return func(ctx *fasthttp.RequestCtx) {
		ctx.Response.Header.Set("Content-Type", "text/html; charset=utf-8")
		ctx.SetBody(page)
	}
}
