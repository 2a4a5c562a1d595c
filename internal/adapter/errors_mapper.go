// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	// the wallet bridge reports a declined signature with any 4xx status
	if strings.Contains(strings.ToLower(body), "user rejected") {
		return fmt.Errorf("%w: %s", ErrUserRejected, body)
	}

	if strings.Contains(strings.ToLower(body), alreadyVerifiedReason) {
		return revertedError(body)
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrReverted, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// alreadyVerifiedReason is the ledger's revert text for a second
// verification of the same record.
const alreadyVerifiedReason = "already verified"

// revertedError wraps a ledger revert reason, adding ErrAlreadyVerified when
// the reason names a completed verification.
func revertedError(reason string) error {
	if strings.Contains(strings.ToLower(reason), alreadyVerifiedReason) {
		return fmt.Errorf("%w: %w: %s", ErrReverted, ErrAlreadyVerified, reason)
	}
	return fmt.Errorf("%w: %s", ErrReverted, reason)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
