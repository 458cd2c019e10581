package app

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Validation errors returned to api users.
const (
	ErrInvalidProjectID  = InvalidRequestError("Invalid project ID format (expected bytes32)")
	ErrInvalidCommitHash = InvalidRequestError("Invalid commit hash format (expected bytes32)")
	ErrInvalidAddress    = InvalidRequestError("Invalid Ethereum address")
)

var bytes32Pattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// ParseProjectID validates bytes32 project id and returns it lowercased.
func ParseProjectID(s string) (string, error) {
	if !bytes32Pattern.MatchString(s) {
		return "", ErrInvalidProjectID
	}

	return strings.ToLower(s), nil
}

// ParseCommitHash validates bytes32 commit hash and returns it lowercased.
func ParseCommitHash(s string) (string, error) {
	if !bytes32Pattern.MatchString(s) {
		return "", ErrInvalidCommitHash
	}

	return strings.ToLower(s), nil
}

// ParseAddress validates hex address and returns it in checksummed form.
// The 0x prefix is optional. Mixed case input must carry a valid EIP-55 checksum.
func ParseAddress(s string) (string, error) {
	if !common.IsHexAddress(s) {
		return "", ErrInvalidAddress
	}

	checksummed := common.HexToAddress(s).Hex()
	digits := s[len(s)-40:]
	if digits != strings.ToLower(digits) && digits != strings.ToUpper(digits) && digits != checksummed[2:] {
		return "", ErrInvalidAddress
	}

	return checksummed, nil
}
