package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pds/internal/config"
)

type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New builds a logger from the server environment and the logging section of the config.
func New(cfg *config.Config) (*Logger, func(), error) {
	zapLogger, err := zapConfig(cfg).Build()
	if err != nil {
		return nil, nil, err
	}
	l := &Logger{SugaredLogger: zapLogger.Sugar()}
	return l, l.Sync, nil
}

// zapConfig starts from the development preset in development and the production
// preset elsewhere. An explicit format overrides the preset's encoding; unknown
// levels fall back to info.
func zapConfig(cfg *config.Config) zap.Config {
	env := strings.ToLower(strings.TrimSpace(cfg.Server.Environment))

	zapCfg := zap.NewProductionConfig()
	if env == "development" || env == "dev" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Format)) {
	case "text", "console":
		zapCfg.Encoding = "console"
	case "json":
		zapCfg.Encoding = "json"
		zapCfg.EncoderConfig = zap.NewProductionEncoderConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Logging.Level))
	if out := strings.TrimSpace(cfg.Logging.OutputPath); out != "" {
		zapCfg.OutputPaths = []string{out}
	}
	if env != "" {
		zapCfg.InitialFields = map[string]interface{}{"env": env}
	}
	return zapCfg
}

// NewNop is used by tests and anywhere a logger is optional.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}
func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Fatalw(msg, keysAndValues...)
}
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}
