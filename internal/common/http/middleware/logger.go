package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"golang.org/x/exp/slices"

	"github.com/labstack/echo/v4"
)

// teeResponseWriter duplicates everything written to the response into a
// buffer so the access log can include the response body.
type teeResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *teeResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *teeResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *teeResponseWriter) Flush() {
	err := http.NewResponseController(w.ResponseWriter).Flush()
	if err != nil && errors.Is(err, http.ErrNotSupported) {
		panic(errors.New("response writer flushing is not supported"))
	}
}

func (w *teeResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *teeResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

var redactedHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-secret-key":  {},
	"api-key":       {},
	"x-auth-token":  {},
}

func readRequestBody(c echo.Context) []byte {
	var body []byte
	if c.Request().Body != nil {
		body, _ = io.ReadAll(c.Request().Body)
	}
	c.Request().Body = io.NopCloser(bytes.NewBuffer(body))
	return body
}

func redactRequestHeader(c echo.Context) []byte {
	headers := make(map[string][]string, len(c.Request().Header))
	for name, vals := range c.Request().Header {
		if _, sensitive := redactedHeaders[strings.ToLower(name)]; sensitive {
			headers[name] = []string{"*****"}
			continue
		}
		headers[name] = vals
	}

	b, _ := json.Marshal(headers)
	return b
}

func captureResponseBody(c echo.Context) *bytes.Buffer {
	buf := new(bytes.Buffer)
	c.Response().Writer = &teeResponseWriter{
		io.MultiWriter(c.Response().Writer, buf),
		c.Response().Writer,
	}
	return buf
}

var skipLogPaths = []string{
	"/api/health",
	"/metrics",
}

// Logger writes one structured access-log line per request, with request and
// response bodies attached and sensitive headers redacted.
func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(skipLogPaths, c.Path()) {
				return next(c)
			}

			start := time.Now()
			ctx := c.Request().Context()
			req := c.Request()
			res := c.Response()
			reqBody := readRequestBody(c)
			reqHeader := redactRequestHeader(c)
			resBody := captureResponseBody(c)

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			fields := []xlog.Field{
				xlog.Time("start_time", start),
				xlog.Time("end_time", start.Add(latency)),
				xlog.String("method", req.Method),
				xlog.String("url_path", req.URL.String()),
				xlog.String("request_body", string(reqBody)),
				xlog.String("request_header", string(reqHeader)),
				xlog.Int("status", res.Status),
				xlog.String("response", resBody.String()),
				xlog.Duration("latency", latency),
			}

			message := fmt.Sprintf("%v %v %v %v", res.Status, req.Method, req.URL.String(), latency)

			switch {
			case res.Status >= http.StatusInternalServerError:
				xlog.Error(ctx, message, fields...)
			case res.Status >= http.StatusMultipleChoices:
				xlog.Warn(ctx, message, fields...)
			default:
				xlog.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}
