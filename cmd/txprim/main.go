package main

import (
	"io"
	"os"

	"github.com/kaspanet/txprim/infrastructure/logger"
	"github.com/pkg/errors"
)

func main() {
	subCmd, config, logFlags := parseCommandLine()

	err := logFlags.InitLogging()
	if err != nil {
		printErrorAndExit(err)
	}

	err = runCommand(subCmd, config, os.Stdout)
	logger.BackendLog.Close()
	if err != nil {
		printErrorAndExit(err)
	}
}

func runCommand(subCmd string, config interface{}, out io.Writer) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, subCmd)
	defer onEnd()

	switch subCmd {
	case decodeHexSubCmd:
		return decodeHex(config.(*decodeHexConfig), out)
	case reverseSubCmd:
		return reverse(config.(*reverseConfig), out)
	case swapEndianSubCmd:
		return swapEndian(config.(*swapEndianConfig), out)
	case parseSatoshisSubCmd:
		return parseSatoshis(config.(*parseSatoshisConfig), out)
	case classifySubCmd:
		return classify(config.(*classifyConfig), out)
	case pushDataSubCmd:
		return pushData(config.(*pushDataConfig), out)
	case opcodeSubCmd:
		return opcode(config.(*opcodeConfig), out)
	case outpointSubCmd:
		return outpoint(config.(*outpointConfig), out)
	case keyScriptSubCmd:
		return keyScript(config.(*keyScriptConfig), out)
	default:
		return errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}
}
