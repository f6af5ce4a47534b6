package constants

const ConvertInprog = "In-Progress"
const ConvertComplete = "Completed"
const ConvertFail = "Failed"

// This is set during compilation, via -ldflags in the release pipeline.
var Version = "latest"
