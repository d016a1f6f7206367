package tile

import (
	"errors"

	"github.com/eak1mov/go-cornerstitch/geom"
)

var (
	ErrInvalidRegion = errors.New("cornerstitch: invalid region")
	ErrOutOfBounds   = errors.New("cornerstitch: region outside plane")
	ErrExists        = errors.New("cornerstitch: region already occupied")
	ErrConflict      = errors.New("cornerstitch: region occupied by other data")
	ErrNotFound      = errors.New("cornerstitch: region not fully occupied")
	ErrNotSplitable  = errors.New("cornerstitch: tile cannot be split by line")
	ErrNotMergable   = errors.New("cornerstitch: tiles cannot be merged")
	ErrInvalidMode   = errors.New("cornerstitch: invalid mode")
	ErrIllegal       = errors.New("cornerstitch: illegal plane")
)

// report logs a rejected call and returns err unchanged.
func (p *Plane[D]) report(method string, err error, regions ...geom.Region) error {
	p.logger.Warn("cornerstitch: "+method+" rejected", "error", err, "regions", regions)
	return err
}
