package lnk

import (
	"errors"

	"github.com/joshuapare/lnkkit/pkg/types"
)

// Structure names carried in *types.FieldError.
const (
	structHeader      = "ShellLinkHeader"
	structIDList      = "LinkTargetIDList"
	structLinkInfo    = "LinkInfo"
	structVolumeID    = "VolumeID"
	structNetworkLink = "CommonNetworkRelativeLink"
	structStringData  = "StringData"
	structExtraData   = "ExtraData"
)

func fieldErr(structure, field string, off int, value uint64, sentinel error) error {
	return types.NewFieldError(structure, field, off, value, sentinel)
}

// atOffset records where a bit-set or table check failed.
func atOffset(err error, off int) error {
	var fe *types.FieldError
	if errors.As(err, &fe) {
		fe.Offset = off
	}
	return err
}
