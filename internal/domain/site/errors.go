package site

import "errors"

var (
	ErrSiteNotFound     = errors.New("site not found")
	ErrProgressNotFound = errors.New("progress update not found")
)
