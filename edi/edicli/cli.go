package edicli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/claimstream/edi837-app/edi/constants"
	"github.com/claimstream/edi837-app/edi/converter"
	"github.com/claimstream/edi837-app/edi/x12"
	"github.com/claimstream/edi837-app/log"
)

// App Name and usage.  Edit them here to prevent breaking tests
const Name = "edi837"
const Usage = "X12 837P Professional claim generator CLI"

func GetApp() *cli.App {
	return setUpApp()
}

func setUpApp() *cli.App {
	app := cli.NewApp()
	app.Name = Name
	app.Usage = Usage
	app.Version = constants.Version
	var inputFile, outputFile string
	app.Commands = []cli.Command{
		{
			Name:  "convert",
			Usage: "Convert a JSON claim document to an 837P transaction file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "input, i",
					Usage:       "Path to the JSON claim document",
					Destination: &inputFile,
				},
				cli.StringFlag{
					Name:        "output, o",
					Usage:       "Path to write the 837P transaction",
					Destination: &outputFile,
				},
			},
			Action: func(c *cli.Context) error {
				log.CLI.WithField("status", constants.ConvertInprog).Infof("converting %s", inputFile)
				if err := convertFile(inputFile, outputFile); err != nil {
					log.CLI.WithField("status", constants.ConvertFail).Error(err)
					return err
				}
				log.CLI.WithField("status", constants.ConvertComplete).Infof("wrote %s", outputFile)
				fmt.Fprintf(app.Writer, "EDI file generated successfully: %s\n", outputFile)
				return nil
			},
		},
	}
	return app
}

func convertFile(inputFile, outputFile string) error {
	if inputFile == "" {
		return errors.New("input file path (--input) must be provided")
	}
	if outputFile == "" {
		return errors.New("output file path (--output) must be provided")
	}

	data, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		return errors.Wrapf(err, "reading claim document %s", inputFile)
	}

	content, err := converter.ConvertJSON(data, x12.EnvelopeFromConf())
	if err != nil {
		return errors.Wrapf(err, "converting claim document %s", inputFile)
	}

	// The file is written only after a fully successful build; there is
	// no partial-output mode.
	if err := os.WriteFile(outputFile, []byte(content), 0640); err != nil {
		return errors.Wrapf(err, "writing transaction file %s", outputFile)
	}

	return nil
}
