package main

import (
	"github.com/hchk/hchk/cmd"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		logrus.Fatalf("Error executing command: %v", err)
	}
}
