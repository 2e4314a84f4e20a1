package common

const (
	AppId          = "tsc"
	AppName        = "Thread-Safe Collections"
	MainDir        = "tsc"
	HomeDirName    = "home"
	HomeDir        = MainDir + "/" + HomeDirName
	VarDirName     = "var"
	VarDir         = HomeDir + "/" + VarDirName
	ConfigDirName  = "etc"
	ConfigDir      = HomeDir + "/" + ConfigDirName
	LogDirName     = "log"
	LogDir         = VarDir + "/" + LogDirName
	LogFile        = LogDir + "/tsc.log"
	DefaultDirName = "default"
	DefaultDir     = MainDir + "/" + DefaultDirName
)

const (
	STDIn = "STDIN"
)
