// File: pkg/logger/echo_logger.go
package logger

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"

	pkgerrors "github.com/wekeepgrowing/project-planner/pkg/errors"
)

// 로그에서 제외할 경로
var skipPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// NewEchoRequestLogger는 zap으로 HTTP 요청/응답을 기록하는 Echo 미들웨어를 생성합니다.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			_, skip := skipPaths[c.Request().URL.Path]
			return skip
		},
		// 에러를 먼저 HTTPErrorHandler에 넘겨서 실제 응답 상태 코드가 기록되도록 합니다.
		HandleError: true,

		LogLatency:      true,
		LogRemoteIP:     true,
		LogMethod:       true,
		LogURI:          true,
		LogRoutePath:    true,
		LogRequestID:    true,
		LogUserAgent:    true,
		LogStatus:       true,
		LogError:        true,
		LogResponseSize: true,
		LogHeaders:      []string{"Content-Type", "Authorization"},

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.String("request.request_id", v.RequestID),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
				zap.Int64("response.response_size", v.ResponseSize),
			}
			if len(v.Headers) > 0 {
				fields = append(fields, zap.Any("request.headers", maskHeaders(v.Headers)))
			}
			if userID, ok := c.Get("user_id").(string); ok && userID != "" {
				fields = append(fields, zap.String("user.id", userID))
			}

			switch {
			case v.Status >= http.StatusInternalServerError:
				if v.Error != nil {
					fields = append(fields, zap.Error(v.Error))
				}
				logger.Error("Server error", fields...)
			case v.Status >= http.StatusBadRequest:
				if v.Error != nil {
					fields = append(fields, zap.Error(v.Error))
				}
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
			return nil
		},
	})
}

// maskHeaders는 Authorization 헤더 값의 앞뒤 일부만 남깁니다.
func maskHeaders(headers map[string][]string) map[string]string {
	masked := make(map[string]string, len(headers))
	for k, values := range headers {
		if len(values) == 0 {
			continue
		}
		val := values[0]
		if http.CanonicalHeaderKey(k) == "Authorization" {
			if len(val) > 15 {
				val = val[:10] + "..." + val[len(val)-5:]
			} else {
				val = "[MASKED]"
			}
		}
		masked[k] = val
	}
	return masked
}

// ErrorResponse는 모든 실패 응답의 본문 형식입니다.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// WithEchoLogger는 Echo의 Logger를 zap으로 바꾸고 {"detail","code"} 형식의 에러 핸들러를 등록합니다.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.Logger = NewEchoZapLogger(logger)

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		he := pkgerrors.ToHTTPError(err)
		detail, ok := he.Message.(string)
		if !ok {
			detail = http.StatusText(he.Code)
		}
		var appErr *pkgerrors.AppError
		code := pkgerrors.CodeOf(pkgerrors.FromHTTPError(he))
		if pkgerrors.As(err, &appErr) {
			code = appErr.Code()
		}

		if he.Code >= http.StatusInternalServerError {
			pkgerrors.LogError(logger, err, "HTTP error",
				zap.Int("status", he.Code),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
			)
		}

		if he.Code == http.StatusUnauthorized && c.Response().Header().Get(echo.HeaderWWWAuthenticate) == "" {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(he.Code)
		} else {
			sendErr = c.JSON(he.Code, ErrorResponse{Detail: detail, Code: code})
		}
		if sendErr != nil {
			logger.Error("Failed to send error response", zap.Error(sendErr))
		}
	}
}

// EchoZapLogger는 echo.Logger 인터페이스를 구현한 zap 로거 래퍼입니다.
// 레벨/출력 설정은 zap 쪽에서 관리하므로 Set* 계열은 무시됩니다.
type EchoZapLogger struct {
	Logger *zap.Logger
	sugar  *zap.SugaredLogger
	prefix string
}

// NewEchoZapLogger는 Echo의 Logger 인터페이스를 구현한 zap 로거 래퍼를 생성합니다.
func NewEchoZapLogger(logger *zap.Logger) *EchoZapLogger {
	return &EchoZapLogger{Logger: logger, sugar: logger.Sugar()}
}

func (l *EchoZapLogger) Output() io.Writer        { return &zapWriter{logger: l.Logger} }
func (l *EchoZapLogger) SetOutput(w io.Writer)    {}
func (l *EchoZapLogger) Level() log.Lvl           { return log.INFO }
func (l *EchoZapLogger) SetLevel(v log.Lvl)       {}
func (l *EchoZapLogger) SetHeader(h string)       {}
func (l *EchoZapLogger) Prefix() string           { return l.prefix }
func (l *EchoZapLogger) SetPrefix(p string)       { l.prefix = p }
func (l *EchoZapLogger) Print(i ...interface{})   { l.sugar.Info(i...) }
func (l *EchoZapLogger) Printj(j log.JSON)        { l.Logger.Info("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Debug(i ...interface{})   { l.sugar.Debug(i...) }
func (l *EchoZapLogger) Debugj(j log.JSON)        { l.Logger.Debug("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Info(i ...interface{})    { l.sugar.Info(i...) }
func (l *EchoZapLogger) Infoj(j log.JSON)         { l.Logger.Info("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Warn(i ...interface{})    { l.sugar.Warn(i...) }
func (l *EchoZapLogger) Warnj(j log.JSON)         { l.Logger.Warn("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Error(i ...interface{})   { l.sugar.Error(i...) }
func (l *EchoZapLogger) Errorj(j log.JSON)        { l.Logger.Error("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Fatal(i ...interface{})   { l.sugar.Fatal(i...) }
func (l *EchoZapLogger) Fatalj(j log.JSON)        { l.Logger.Fatal("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Panic(i ...interface{})   { l.sugar.Panic(i...) }
func (l *EchoZapLogger) Panicj(j log.JSON)        { l.Logger.Panic("json_message", zap.Any("json", j)) }

func (l *EchoZapLogger) Printf(format string, i ...interface{}) { l.sugar.Infof(format, i...) }
func (l *EchoZapLogger) Debugf(format string, i ...interface{}) { l.sugar.Debugf(format, i...) }
func (l *EchoZapLogger) Infof(format string, i ...interface{})  { l.sugar.Infof(format, i...) }
func (l *EchoZapLogger) Warnf(format string, i ...interface{})  { l.sugar.Warnf(format, i...) }
func (l *EchoZapLogger) Errorf(format string, i ...interface{}) { l.sugar.Errorf(format, i...) }
func (l *EchoZapLogger) Fatalf(format string, i ...interface{}) { l.sugar.Fatalf(format, i...) }
func (l *EchoZapLogger) Panicf(format string, i ...interface{}) { l.sugar.Panicf(format, i...) }

// zapWriter는 io.Writer 인터페이스를 구현한 zap 로거 래퍼입니다.
type zapWriter struct {
	logger *zap.Logger
}

func (w *zapWriter) Write(p []byte) (n int, err error) {
	w.logger.Info(string(p))
	return len(p), nil
}
