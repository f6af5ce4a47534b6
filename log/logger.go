package log

import (
	"os"
	"path/filepath"

	"github.com/claimstream/edi837-app/conf"
	"github.com/sirupsen/logrus"
)

var (
	EDI       logrus.FieldLogger
	Converter logrus.FieldLogger
	CLI       logrus.FieldLogger
)

func init() {
	EDI = Logger(logrus.New(), conf.GetEnv("EDI_ERROR_LOG"),
		"edi837", conf.GetEnv("ENVIRONMENT"))
	Converter = Logger(logrus.New(), conf.GetEnv("EDI_CONVERTER_LOG"),
		"edi837", conf.GetEnv("ENVIRONMENT"))
	CLI = Logger(logrus.New(), conf.GetEnv("EDI_CLI_LOG"),
		"edi837", conf.GetEnv("ENVIRONMENT"))
}

func Logger(logger *logrus.Logger, outputFile string,
	application, environment string) logrus.FieldLogger {

	if outputFile != "" {
		if file, err := os.OpenFile(filepath.Clean(outputFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640); err == nil {
			logger.SetOutput(file)
		} else {
			logger.Infof("Failed to open output file %s. Will use stderr. %s",
				outputFile, err.Error())
		}
	}

	return logger.WithFields(logrus.Fields{
		"application": application,
		"environment": environment})
}
