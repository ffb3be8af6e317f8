package txscript

import (
	"github.com/kaspanet/txprim/infrastructure/logger"
)

var log = logger.RegisterSubSystem("SCRP")
