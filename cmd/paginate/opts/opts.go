package opts

import (
	"github.com/yunzck8s/paginate/pkg/config"
	"github.com/yunzck8s/paginate/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	UserLogger *log.UserLogger
}
