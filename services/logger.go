package services

import (
	"github.com/sirupsen/logrus"
)

// componentLogger returns a logrus entry tagged with the service name, so
// checkout/shipmozo/mail lines are distinguishable in one stream.
func componentLogger(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}
