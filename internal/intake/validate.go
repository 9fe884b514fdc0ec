package intake

import (
	"strconv"

	apperrors "lasercraft/internal/errors"
)

func appendPriceDetail(details []apperrors.ValidationDetail, field, value string, required bool) []apperrors.ValidationDetail {
	if value == "" {
		if required {
			details = append(details, apperrors.ValidationDetail{Field: field, Message: field + " is required"})
		}
		return details
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil || price < 0 {
		details = append(details, apperrors.ValidationDetail{Field: field, Message: field + " must be a non-negative decimal"})
	}
	return details
}
