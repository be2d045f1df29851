package main

import (
	"os"

	"Salary-Dashboard/internal/app/cli"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
