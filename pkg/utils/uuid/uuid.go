package uuid

import (
	gouuid "github.com/nu7hatch/gouuid"
)

// New returns new random (v4) uuid as string in XXXXXXXX-XXXX-... format.
func New() string {
	id, err := gouuid.NewV4()
	if err != nil {
		panic("cannot generate uuid: " + err.Error())
	}
	return id.String()
}
