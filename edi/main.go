package main

import (
	"os"

	"github.com/claimstream/edi837-app/edi/edicli"
	"github.com/claimstream/edi837-app/log"
)

func main() {
	if err := edicli.GetApp().Run(os.Args); err != nil {
		log.CLI.Fatal(err)
	}
}
