package client

import (
	"errors"

	"github.com/dmitrijs2005/lifearchive/internal/common"
)

var (
	ErrUnavailable = common.ErrUnavailable
	ErrRejected    = errors.New("server rejected archive")
)
