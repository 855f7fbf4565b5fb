/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package module

// Module defines system level module structure, Setup is called for every
// registered module before any module is started, Stop runs in reverse
// registration order.
type Module interface {
	Setup()
	Start() error
	Stop() error
	Name() string
}
