// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Context
// -------
// The backend writes lifecycle, auth, and storage events to one JSON log
// per day under `<root>/logs/YYYY-MM-DD.log`.  In an interactive TTY the
// same events are teed, console-formatted, to stdout.  Rotation,
// compression, and retention are Lumberjack's job; no external logrotate
// is needed.
//
// The logger is installed as the process-wide default via
// zap.ReplaceGlobals, so packages log through zap.S()/zap.L() without
// carrying a handle.

package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a *zap.SugaredLogger writing JSON to <root>/logs/ and
// installs it globally.  tee adds a console core for interactive runs.
func New(rootDir string, tee bool) (*zap.SugaredLogger, error) {
	logDir := filepath.Join(rootDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, time.Now().Format("2006-01-02")+".log"),
		MaxSize:    20, // MB; the site is low-traffic
		MaxBackups: 7,
		MaxAge:     30, // days
		Compress:   true,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(fileSink),
			zap.InfoLevel,
		),
	}
	if tee {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			zap.InfoLevel,
		))
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.ErrorOutput(zapcore.AddSync(fileSink)),
	).Sugar()

	zap.ReplaceGlobals(z.Desugar())

	z.Infow("logger online", "tee", tee)
	return z, nil
}
