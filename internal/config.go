package internal

import "github.com/go-stdlog/stdlog"

type Config interface {
	GetWorkdir() string
	GetLogger() stdlog.Logger
}
