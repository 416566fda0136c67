package rcontext

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/john-rice/td/common/config"
)

func Initial() RequestContext {
	return RequestContext{
		Context: context.Background(),
		Log:     logrus.WithFields(logrus.Fields{"nocontext": true}),
		Config:  *config.Get(),
	}.populate()
}

type RequestContext struct {
	context.Context

	// These are also stored on the context object itself
	Log    *logrus.Entry     // td.logger
	Config config.RepoConfig // td.config
}

func (c RequestContext) populate() RequestContext {
	c.Context = context.WithValue(c.Context, "td.logger", c.Log)
	c.Context = context.WithValue(c.Context, "td.config", c.Config)
	return c
}

func (c RequestContext) ReplaceLogger(log *logrus.Entry) RequestContext {
	ctx := context.WithValue(c.Context, "td.logger", log)
	return RequestContext{
		Context: ctx,
		Log:     log,
		Config:  c.Config,
	}
}

func (c RequestContext) LogWithFields(fields logrus.Fields) RequestContext {
	return c.ReplaceLogger(c.Log.WithFields(fields))
}
