package cli

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrBadFraction is returned for arguments that are not P/Q or P.
var ErrBadFraction = errors.New("cli: expected a fraction P/Q")

// parseFraction reads "P/Q" or "P" (meaning P/1).
func parseFraction(arg string) (p, q *big.Int, err error) {
	num, den, found := strings.Cut(strings.TrimSpace(arg), "/")
	if !found {
		den = "1"
	}

	p, ok := new(big.Int).SetString(strings.TrimSpace(num), 10)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrBadFraction, arg)
	}
	q, ok = new(big.Int).SetString(strings.TrimSpace(den), 10)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrBadFraction, arg)
	}

	return p, q, nil
}

func parseUints(args []string) ([]uint64, error) {
	us := make([]uint64, len(args))
	for i, arg := range args {
		u, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cli: coefficient %d: %w", i, err)
		}
		us[i] = u
	}

	return us, nil
}

func parseInts(args []string) ([]int64, error) {
	vs := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cli: argument %d: %w", i, err)
		}
		vs[i] = v
	}

	return vs, nil
}
