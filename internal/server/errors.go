package server

import "errors"

var errNoServersAreCreated = errors.New("no transport servers were configured")
