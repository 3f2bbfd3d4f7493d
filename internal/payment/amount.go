package payment

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FenToYuan 将分转换为两位小数的元字符串
func FenToYuan(fen int64) string {
	return decimal.NewFromInt(fen).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// YuanToFen 将元字符串转换为分，精度超过分或为负值时报错
func YuanToFen(yuan string) (int64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(yuan))
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is invalid", ErrResponseInvalid, yuan)
	}
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: amount %q is negative", ErrResponseInvalid, yuan)
	}
	fen := amount.Mul(decimal.NewFromInt(100))
	if !fen.Equal(fen.Truncate(0)) {
		return 0, fmt.Errorf("%w: amount %q precision exceeds fen", ErrResponseInvalid, yuan)
	}
	return fen.IntPart(), nil
}
