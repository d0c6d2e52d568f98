package parser

import (
	"errors"
	"strconv"
	"strings"
)

var errMissingColon = errors.New("missing ':' separator")

// qidPrefix marks the optional query-id token that may follow the label.
const qidPrefix = "qid:"

// parseLabel converts the label token to a float64.
func parseLabel(tok string) (float64, error) {
	return strconv.ParseFloat(tok, 64)
}

// parseQID converts a "qid:<uint>" token. It must only be called on tokens
// for which isQID returned true.
func parseQID(tok string) (uint64, error) {
	return strconv.ParseUint(tok[len(qidPrefix):], 10, 64)
}

func isQID(tok string) bool {
	return strings.HasPrefix(tok, qidPrefix)
}

// parseFeature converts an "<index>:<value>" token into a column id and a
// value. The index must be a non-negative integer and the value a float.
func parseFeature(tok string) (col uint64, val float64, err error) {
	i := strings.IndexByte(tok, ':')
	if i < 0 {
		return 0, 0, errMissingColon
	}
	col, err = strconv.ParseUint(tok[:i], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	val, err = strconv.ParseFloat(tok[i+1:], 64)
	if err != nil {
		return 0, 0, err
	}
	return col, val, nil
}
