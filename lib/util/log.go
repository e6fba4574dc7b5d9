package util

import "github.com/go-i2p/timeconv/lib/util/logger"

var log = logger.GetLogger()
