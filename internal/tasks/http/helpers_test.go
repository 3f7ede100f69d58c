package http_test

import (
	"strconv"
	"time"
)

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func nowUTC() time.Time { return time.Now().UTC() }
