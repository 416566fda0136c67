package previews

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/john-rice/td/common/config"
	"github.com/john-rice/td/common/rcontext"
)

func testContext(t *testing.T) rcontext.RequestContext {
	return rcontext.RequestContext{
		Context: context.Background(),
		Log:     logrus.WithFields(logrus.Fields{"test": t.Name()}),
		Config:  config.NewDefaultRepoConfig(),
	}
}
