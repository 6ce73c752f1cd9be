// Package verification holds the default identity-document verifier. Real
// PVC lookups go through INEC and NIN lookups through NIMC; both stay outside
// this service, so the built-in oracle only checks document formats.
package verification

import (
	"context"
	"regexp"
)

var (
	pvcPattern = regexp.MustCompile(`^[A-Za-z0-9]{8,20}$`)
	ninPattern = regexp.MustCompile(`^[0-9]{11}$`)
)

type StaticOracle struct{}

func (StaticOracle) VerifyPVC(_ context.Context, pvcNumber string) (bool, error) {
	return pvcPattern.MatchString(pvcNumber), nil
}

func (StaticOracle) VerifyNIN(_ context.Context, nin string) (bool, error) {
	return ninPattern.MatchString(nin), nil
}
