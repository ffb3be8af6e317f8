package wallet

import (
	"github.com/kaspanet/txprim/infrastructure/logger"
)

var log = logger.RegisterSubSystem("WLLT")
