package system

import "github.com/milk9111/firefight/common"

var logger = common.NewLogger("system")
