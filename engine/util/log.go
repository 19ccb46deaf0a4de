package util

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogVoxel | LogNav | LogIO | LogSystem

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogVoxel LogCategory = 1 << iota
	LogNav
	LogIO
	LogSystem
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

func LogVoxelInfo(txt string) {
	log(LogVoxel, LogLevelInfo, txt)
}

func LogVoxelError(txt string) {
	log(LogVoxel, LogLevelError, txt)
}

func LogNavInfo(txt string) {
	log(LogNav, LogLevelInfo, txt)
}

func LogNavDebug(txt string) {
	log(LogNav, LogLevelDebug, txt)
}

func LogNavWarning(txt string) {
	log(LogNav, LogLevelWarning, txt)
}

func LogNavError(txt string) {
	log(LogNav, LogLevelError, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}
