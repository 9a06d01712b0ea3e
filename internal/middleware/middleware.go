package middleware

import (
	"github.com/valyala/fasthttp"

	"github.com/washtime/api/internal/errors"
)

type Middleware = func(ctx *fasthttp.RequestCtx) *errors.ResponseError
