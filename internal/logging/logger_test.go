package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit_Level(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	Init("debug")
	assert.Equal(t, log.DebugLevel, L().GetLevel())

	Init("not-a-level")
	assert.Equal(t, log.InfoLevel, L().GetLevel())
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.NotPanics(t, func() {
		l.WithField("run", "x").Info("dropped")
	})
	assert.NotNil(t, NewDefaultLogger())
}
