package errorlog

// Maximum lengths, in bytes, of the bounded Record text fields. Input longer
// than the maximum is truncated to fit and reported as ErrTruncated.
const (
	MaxFunctionLen    = 64
	MaxFileLen        = 128
	MaxDescriptionLen = 512
)

const emptyString = ""

const (
	errMsgOpenLogFile   = "Failed to open log file."
	errMsgCloseLogFile  = "Failed to close log file."
	errMsgConfigInvalid = "Logging configuration is invalid."
)
