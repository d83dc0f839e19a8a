package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrBadSalespersonKey = errors.New("malformed salesperson key")

// ShowroomKey is the index key of a showroom id.
func ShowroomKey(id int) string {
	return strconv.Itoa(id)
}

// SalespersonID is the index key of a salesperson inside its showroom.
func SalespersonID(id int) string {
	return strconv.Itoa(id)
}

// SalespersonKey identifies a salesperson across showrooms, e.g. "1_101".
func SalespersonKey(showroomID, salespersonID int) string {
	return fmt.Sprintf("%d_%d", showroomID, salespersonID)
}

// ParseSalespersonKey splits a key built by SalespersonKey.
func ParseSalespersonKey(key string) (showroomID, salespersonID int, err error) {
	s, p, ok := strings.Cut(key, "_")
	if !ok {
		return 0, 0, errors.Wrapf(ErrBadSalespersonKey, "%q", key)
	}
	if showroomID, err = strconv.Atoi(s); err != nil {
		return 0, 0, errors.Wrapf(ErrBadSalespersonKey, "%q: showroom id", key)
	}
	if salespersonID, err = strconv.Atoi(p); err != nil {
		return 0, 0, errors.Wrapf(ErrBadSalespersonKey, "%q: salesperson id", key)
	}
	return showroomID, salespersonID, nil
}
