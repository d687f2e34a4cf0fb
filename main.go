package main

import (
	"os"

	"github.com/a7medJamal/gml/app"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := app.Run(os.Stdout, os.Stderr); err != nil {
		logrus.Fatal(err)
	}
}
