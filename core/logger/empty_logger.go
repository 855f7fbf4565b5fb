/* Copyright © INFINI Ltd. All rights reserved.
 * Web: https://infinilabs.com
 * Email: hello#infini.ltd */

package logger

// EmptyLogger swallows everything the stdlib logger writes so all output
// flows through seelog instead.
type EmptyLogger struct {
}

func (logger EmptyLogger) Write(p []byte) (n int, err error) {
	return len(p), nil
}
